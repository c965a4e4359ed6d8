package platform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "normal name", SanitizeFilename("normal name"))
	assert.Equal(t, "a_b_c_d_e_f_g_h_i", SanitizeFilename(`a<b>c:d"e/f\g|h?i`))
	assert.Equal(t, "trimmed", SanitizeFilename("  trimmed  "))

	long := strings.Repeat("x", 300)
	sanitized := SanitizeFilename(long)
	assert.Len(t, sanitized, MaxFilenameLength)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir() + "/nested/deep"
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir)) // idempotent
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatFileSize(0))
	assert.Equal(t, "512.0 B", FormatFileSize(512))
	assert.Equal(t, "1.0 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 MB", FormatFileSize(1536*1024))
	assert.Equal(t, "2.0 GB", FormatFileSize(2*1024*1024*1024))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:42", FormatDuration(42))
	assert.Equal(t, "03:25", FormatDuration(205))
	assert.Equal(t, "01:00:01", FormatDuration(3601))
}
