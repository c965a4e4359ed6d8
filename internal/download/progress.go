package download

import (
	"sync"

	"github.com/ytget/ytgrab/internal/model"
)

// Reporter republishes engine progress records to the registered observer,
// stamping each with the completed and total file counts for the current
// collection. Counts reset at the start of each collection download. The
// mutex guards against torn reads when the observer runs on a presentation
// thread.
type Reporter struct {
	mu        sync.Mutex
	observer  func(model.ProgressRecord)
	completed int
	total     int
}

// NewReporter creates a reporter with no observer.
func NewReporter() *Reporter {
	return &Reporter{}
}

// SetObserver registers the observer. Exactly one observer is registered at
// a time; passing nil silences reporting.
func (r *Reporter) SetObserver(fn func(model.ProgressRecord)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = fn
}

// Reset zeroes the completed counter and records the number of files the
// upcoming run will retrieve.
func (r *Reporter) Reset(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = 0
	r.total = total
}

// Completed returns the number of files finished in the current run.
func (r *Reporter) Completed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}

// Handle receives one engine progress record, increments the completed
// count on finished files, and forwards the stamped record.
func (r *Reporter) Handle(record model.ProgressRecord) {
	r.mu.Lock()
	if record.Status == model.ProgressFinished {
		r.completed++
	}
	record.CompletedFiles = r.completed
	record.TotalFiles = r.total
	observer := r.observer
	r.mu.Unlock()

	if observer != nil {
		observer(record)
	}
}
