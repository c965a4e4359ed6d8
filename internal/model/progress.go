package model

// ProgressStatus represents the phase a progress record was emitted in.
type ProgressStatus string

const (
	// ProgressDownloading means bytes are being transferred.
	ProgressDownloading ProgressStatus = "downloading"

	// ProgressFinished means the current file completed.
	ProgressFinished ProgressStatus = "finished"
)

// ProgressRecord is a normalized progress update republished to the
// registered observer. Transient: valid only for the duration of the
// callback invocation.
type ProgressRecord struct {
	Status         ProgressStatus
	Filename       string
	Percent        float64 // 0 to 100
	Speed          string  // human readable, e.g. "1.2MB/s"
	ETA            string  // human readable, empty if unknown
	CompletedFiles int
	TotalFiles     int
}

// RunState represents the orchestrator state for one batch invocation.
type RunState string

const (
	RunIdle        RunState = "idle"
	RunResolving   RunState = "resolving"
	RunFiltering   RunState = "filtering"
	RunDownloading RunState = "downloading"
	RunCompleted   RunState = "completed"
	RunCancelled   RunState = "cancelled"
	RunFailed      RunState = "failed"
)

// String returns the string representation of the run state.
func (rs RunState) String() string {
	return string(rs)
}

// URLResult records the outcome of one URL in a batch download.
type URLResult struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Type    string `json:"type,omitempty"` // "video" or "playlist"
	Error   string `json:"error,omitempty"`
}
