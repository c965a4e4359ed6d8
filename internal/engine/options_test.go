package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoSelector(t *testing.T) {
	assert.Equal(t, "best[ext=mp4][height<=720]", VideoSelector("mp4", "720p"))
	assert.Equal(t, "best[ext=webm][height<=1080]", VideoSelector("webm", "1080p"))
	assert.Equal(t, "best[ext=mkv]", VideoSelector("mkv", "best"))

	// Bare numeric tokens are tolerated.
	assert.Equal(t, "best[ext=mp4][height<=480]", VideoSelector("mp4", "480"))

	// Unknown tokens fall back to no ceiling.
	assert.Equal(t, "best[ext=mp4]", VideoSelector("mp4", "potato"))
}

func TestOutputTemplate(t *testing.T) {
	single := OutputTemplate("/dl", false)
	assert.Equal(t, filepath.Join("/dl", "%(uploader)s", "%(title)s.%(ext)s"), single)

	playlist := OutputTemplate("/dl", true)
	assert.Equal(t, filepath.Join("/dl", "%(playlist_title)s", "%(title)s.%(ext)s"), playlist)
}
