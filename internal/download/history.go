package download

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ytget/ytgrab/internal/model"
)

// ScanExistingIDs collects the identifiers recorded in the sidecar metadata
// files of dir. A nonexistent directory yields an empty set; sidecars that
// fail to parse or lack an identifier are skipped, never aborting the scan.
// Duplicate detection is scoped to this one directory. The directory name is
// taken literally; collection titles may carry glob metacharacters.
func ScanExistingIDs(dir string) map[string]struct{} {
	ids := make(map[string]struct{})

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ids
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), model.SidecarSuffix) {
			continue
		}
		sc, err := model.ParseSidecarFile(filepath.Join(dir, entry.Name()))
		if err != nil || sc.ID == "" {
			continue
		}
		ids[sc.ID] = struct{}{}
	}
	return ids
}

// History derives the download history from every sidecar file under root,
// newest first. Nothing is indexed; the result is recomputed per call.
func History(root string) []model.HistoryEntry {
	var entries []model.HistoryEntry

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), model.SidecarSuffix) {
			return nil
		}

		sc, err := model.ParseSidecarFile(path)
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		entries = append(entries, model.HistoryEntry{
			Title:        sc.Title,
			Uploader:     sc.Uploader,
			Duration:     sc.Duration,
			UploadDate:   sc.UploadDate,
			URL:          sc.WebpageURL,
			Dir:          filepath.Dir(path),
			DownloadedAt: info.ModTime(),
		})
		return nil
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DownloadedAt.After(entries[j].DownloadedAt)
	})
	return entries
}
