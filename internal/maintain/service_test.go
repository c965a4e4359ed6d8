package maintain

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStorageInfo(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.mp3"), "12345")
	writeFile(t, filepath.Join(root, "sub", "b.mp3"), "123")
	writeFile(t, filepath.Join(root, "sub", "c.MP4"), "1")

	info := NewService(root, nil, nil).StorageInfo()
	assert.Equal(t, int64(9), info.TotalSize)
	assert.Equal(t, 3, info.FileCount)
	assert.Equal(t, 1, info.FolderCount)
	assert.Equal(t, 2, info.Extensions[".mp3"])
	assert.Equal(t, 1, info.Extensions[".mp4"])
}

func TestPurgeTemp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "song.mp3.part"), "x")
	writeFile(t, filepath.Join(root, "sub", "frag.ytdl"), "x")
	writeFile(t, filepath.Join(root, "scratch.tmp"), "x")
	writeFile(t, filepath.Join(root, "keep.mp3"), "x")

	deleted := NewService(root, nil, nil).PurgeTemp()
	assert.Equal(t, 3, deleted)

	assert.FileExists(t, filepath.Join(root, "keep.mp3"))
	assert.NoFileExists(t, filepath.Join(root, "song.mp3.part"))
	assert.NoFileExists(t, filepath.Join(root, "sub", "frag.ytdl"))
}

func TestPruneEmptyDirs(t *testing.T) {
	root := t.TempDir()
	// a/b is empty; pruning b must make a prunable in the same pass.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0755))
	writeFile(t, filepath.Join(root, "full", "song.mp3"), "x")

	deleted := NewService(root, nil, nil).PruneEmptyDirs()
	assert.Equal(t, 2, deleted)

	assert.NoDirExists(t, filepath.Join(root, "a"))
	assert.DirExists(t, filepath.Join(root, "full"))
	assert.DirExists(t, root)
}

func TestPruneEmptyDirsKeepsRoot(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, 0, NewService(root, nil, nil).PruneEmptyDirs())
	assert.DirExists(t, root)
}

func TestReorganizeByDate(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Artist")
	writeFile(t, filepath.Join(dir, "song.info.json"),
		`{"id": "aaaaaaaaaaa", "title": "Song", "upload_date": "20230615"}`)
	writeFile(t, filepath.Join(dir, "song.mp3"), "audio")
	writeFile(t, filepath.Join(dir, "song.webp"), "thumb")
	// No sidecar, never touched.
	writeFile(t, filepath.Join(dir, "loose.mp3"), "x")

	moved := NewService(root, nil, nil).ReorganizeByDate()
	assert.Equal(t, 2, moved)

	dest := filepath.Join(root, "2023", "06")
	assert.FileExists(t, filepath.Join(dest, "song.mp3"))
	assert.FileExists(t, filepath.Join(dest, "song.webp"))
	assert.FileExists(t, filepath.Join(dest, "song.info.json"))
	assert.FileExists(t, filepath.Join(dir, "loose.mp3"))
	assert.NoFileExists(t, filepath.Join(dir, "song.mp3"))
}

func TestReorganizeByDateMetacharNames(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Best Hits [2024]")
	writeFile(t, filepath.Join(dir, "song [live].info.json"),
		`{"id": "aaaaaaaaaaa", "upload_date": "20230615"}`)
	writeFile(t, filepath.Join(dir, "song [live].mp3"), "audio")

	moved := NewService(root, nil, nil).ReorganizeByDate()
	assert.Equal(t, 1, moved)

	dest := filepath.Join(root, "2023", "06")
	assert.FileExists(t, filepath.Join(dest, "song [live].mp3"))
	assert.FileExists(t, filepath.Join(dest, "song [live].info.json"))
}

func TestReorganizeByDateNoClobber(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Artist")
	writeFile(t, filepath.Join(dir, "song.info.json"),
		`{"id": "aaaaaaaaaaa", "upload_date": "20230615"}`)
	writeFile(t, filepath.Join(dir, "song.mp3"), "new")
	writeFile(t, filepath.Join(root, "2023", "06", "song.mp3"), "old")

	moved := NewService(root, nil, nil).ReorganizeByDate()
	assert.Equal(t, 0, moved)

	// The occupied destination keeps its content and the source stays put.
	data, err := os.ReadFile(filepath.Join(root, "2023", "06", "song.mp3"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.FileExists(t, filepath.Join(dir, "song.mp3"))
}

func TestReorganizeByDateSkipsBadSidecars(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "corrupt.info.json"), `{broken`)
	writeFile(t, filepath.Join(root, "short.info.json"), `{"id": "x", "upload_date": "2023"}`)
	writeFile(t, filepath.Join(root, "short.mp3"), "x")

	assert.Equal(t, 0, NewService(root, nil, nil).ReorganizeByDate())
	assert.FileExists(t, filepath.Join(root, "short.mp3"))
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.log")
	writeFile(t, old, "x")
	writeFile(t, filepath.Join(dir, "fresh.log"), "x")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")

	stale := time.Now().AddDate(0, 0, -40)
	require.NoError(t, os.Chtimes(old, stale, stale))

	deleted := NewService(dir, nil, nil).CleanupLogs(dir, 30)
	assert.Equal(t, 1, deleted)
	assert.NoFileExists(t, old)
	assert.FileExists(t, filepath.Join(dir, "fresh.log"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestFullMaintenance(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "junk.part"), "x")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0755))
	writeFile(t, filepath.Join(root, "keep.mp3"), "x")

	var steps []string
	results := NewService(root, nil, nil).FullMaintenance(func(msg string) {
		steps = append(steps, msg)
	})

	assert.Equal(t, 1, results.TempFilesDeleted)
	assert.Equal(t, 1, results.EmptyDirsDeleted)
	assert.Equal(t, 1, results.Storage.FileCount)
	assert.NotEmpty(t, steps)
	assert.Equal(t, "Maintenance complete", steps[len(steps)-1])
}
