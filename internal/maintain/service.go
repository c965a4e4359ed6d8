package maintain

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ytget/ytgrab/internal/model"
)

// Transient suffixes left behind by interrupted downloads.
var tempSuffixes = []string{".part", ".tmp", ".temp", ".ytdl"}

// StorageInfo summarizes a directory tree.
type StorageInfo struct {
	TotalSize   int64
	FileCount   int
	FolderCount int
	Extensions  map[string]int
}

// Results aggregates one full maintenance pass.
type Results struct {
	TempFilesDeleted int
	EmptyDirsDeleted int
	Quality          QualityReport
	Storage          StorageInfo
}

// Service runs maintenance operations rooted at one directory.
type Service struct {
	root   string
	prober Prober
	logger *slog.Logger
}

// NewService creates a maintenance service. A nil prober disables the
// quality report.
func NewService(root string, prober Prober, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{root: root, prober: prober, logger: logger}
}

// StorageInfo walks the tree and reports total size, file and folder counts,
// and per-extension counts. Pure read.
func (s *Service) StorageInfo() StorageInfo {
	info := StorageInfo{Extensions: make(map[string]int)}

	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == s.root {
			return nil
		}
		if d.IsDir() {
			info.FolderCount++
			return nil
		}

		info.FileCount++
		info.Extensions[strings.ToLower(filepath.Ext(path))]++
		if fi, err := d.Info(); err == nil {
			info.TotalSize += fi.Size()
		}
		return nil
	})

	return info
}

// PurgeTemp deletes files with transient suffixes. Files that cannot be
// removed are skipped and the sweep continues.
func (s *Service) PurgeTemp() int {
	deleted := 0

	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		for _, suffix := range tempSuffixes {
			if strings.HasSuffix(path, suffix) {
				if err := os.Remove(path); err == nil {
					deleted++
				}
				break
			}
		}
		return nil
	})

	s.logger.Info("temp files purged", "count", deleted)
	return deleted
}

// PruneEmptyDirs removes empty directories, deepest first, so a pruned
// child lets its now-empty parent go in the same pass. The root itself is
// never removed.
func (s *Service) PruneEmptyDirs() int {
	var dirs []string
	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == s.root {
			return nil
		}
		dirs = append(dirs, path)
		return nil
	})

	sort.Slice(dirs, func(i, j int) bool {
		return strings.Count(dirs[i], string(os.PathSeparator)) > strings.Count(dirs[j], string(os.PathSeparator))
	})

	deleted := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err == nil {
			deleted++
		}
	}

	s.logger.Info("empty directories pruned", "count", deleted)
	return deleted
}

// ReorganizeByDate moves every downloaded file into a year/month directory
// derived from the 8-digit upload date in its sidecar. Files already
// present at the destination are never overwritten. Returns the number of
// media files moved.
func (s *Service) ReorganizeByDate() int {
	var sidecars []string
	filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, model.SidecarSuffix) {
			sidecars = append(sidecars, path)
		}
		return nil
	})

	moved := 0
	for _, sidecarPath := range sidecars {
		sc, err := model.ParseSidecarFile(sidecarPath)
		if err != nil || len(sc.UploadDate) < 8 {
			continue
		}

		year, month := sc.UploadDate[:4], sc.UploadDate[4:6]
		destDir := filepath.Join(s.root, year, month)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			continue
		}

		// Siblings are matched by literal base-name prefix; titles may
		// carry glob metacharacters.
		base := strings.TrimSuffix(filepath.Base(sidecarPath), model.SidecarSuffix)
		srcDir := filepath.Dir(sidecarPath)
		siblings, err := os.ReadDir(srcDir)
		if err != nil {
			continue
		}

		for _, entry := range siblings {
			name := entry.Name()
			if entry.IsDir() || !strings.HasPrefix(name, base+".") || strings.HasSuffix(name, model.SidecarSuffix) {
				continue
			}
			if moveNoClobber(filepath.Join(srcDir, name), filepath.Join(destDir, name)) {
				moved++
			}
		}

		// The sidecar follows its media files but is not counted.
		moveNoClobber(sidecarPath, filepath.Join(destDir, filepath.Base(sidecarPath)))
	}

	s.logger.Info("files reorganized by date", "count", moved)
	return moved
}

// moveNoClobber renames src to dest unless dest already exists.
func moveNoClobber(src, dest string) bool {
	if src == dest {
		return false
	}
	if _, err := os.Stat(dest); err == nil {
		return false
	}
	return os.Rename(src, dest) == nil
}

// CleanupLogs deletes .log files in dir older than the given number of
// days.
func (s *Service) CleanupLogs(dir string, daysOld int) int {
	cutoff := time.Now().AddDate(0, 0, -daysOld)
	deleted := 0

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		fi, err := entry.Info()
		if err != nil || fi.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			deleted++
		}
	}
	return deleted
}

// FullMaintenance runs every maintenance step in order, reporting each step
// through the optional callback.
func (s *Service) FullMaintenance(step func(string)) Results {
	notify := func(msg string) {
		if step != nil {
			step(msg)
		}
	}

	var results Results

	notify("Purging temp files...")
	results.TempFilesDeleted = s.PurgeTemp()

	notify("Pruning empty directories...")
	results.EmptyDirsDeleted = s.PruneEmptyDirs()

	notify("Analyzing audio quality...")
	results.Quality = s.QualityReport()

	notify("Collecting storage info...")
	results.Storage = s.StorageInfo()

	notify("Maintenance complete")
	return results
}
