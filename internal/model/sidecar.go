package model

import (
	"encoding/json"
	"os"
	"time"
)

// SidecarSuffix is the suffix of metadata files written alongside each
// retrieved media file.
const SidecarSuffix = ".info.json"

// Sidecar is the subset of the engine-written metadata file used for
// duplicate detection and history reporting.
type Sidecar struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	Duration   float64 `json:"duration"`
	UploadDate string  `json:"upload_date"`
	WebpageURL string  `json:"webpage_url"`
}

// ParseSidecarFile reads and decodes one sidecar metadata file.
func ParseSidecarFile(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// HistoryEntry is one previously retrieved item, derived from a sidecar file
// plus that file's modification time. Recomputed by directory scan each time
// history is requested.
type HistoryEntry struct {
	Title        string
	Uploader     string
	Duration     float64
	UploadDate   string
	URL          string
	Dir          string
	DownloadedAt time.Time
}
