package download

import (
	"context"

	"github.com/ytget/ytgrab/internal/model"
)

// Engine is the download engine surface the orchestrator drives.
type Engine interface {
	// FetchInfo performs a metadata-only lookup. Failures yield an
	// unavailable result, never an error.
	FetchInfo(ctx context.Context, url string) model.Info

	// DownloadOne retrieves one URL under the given options. Failures are
	// logged inside the engine and reported as false.
	DownloadOne(ctx context.Context, url string, opts model.DownloadOptions) bool

	// SetProgressObserver registers the single progress observer.
	SetProgressObserver(fn func(model.ProgressRecord))
}
