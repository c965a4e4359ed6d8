package download

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ytget/ytgrab/internal/model"
	"github.com/ytget/ytgrab/internal/platform"
)

// Config configures the orchestrator.
type Config struct {
	OutputDir       string
	EmbedThumbnails bool
	SaveMetadata    bool
}

// Service orchestrates downloads through the engine: it resolves collection
// membership, filters out already-retrieved items, and drives the engine
// one item at a time. Cancellation is cooperative and observed only between
// items; an in-flight transfer is never interrupted.
type Service struct {
	engine   Engine
	reporter *Reporter
	logger   *slog.Logger
	config   Config

	mu        sync.Mutex
	state     model.RunState
	cancelled atomic.Bool
}

// NewService creates the orchestrator and wires engine progress through the
// reporter.
func NewService(engine Engine, config Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		engine:   engine,
		reporter: NewReporter(),
		logger:   logger,
		config:   config,
		state:    model.RunIdle,
	}
	engine.SetProgressObserver(s.reporter.Handle)
	return s
}

// SetProgressObserver registers the observer receiving normalized progress
// records. Updates arrive sequentially; the presentation layer marshals
// them onto its own thread.
func (s *Service) SetProgressObserver(fn func(model.ProgressRecord)) {
	s.reporter.SetObserver(fn)
}

// State returns the current run state.
func (s *Service) State() model.RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cancel raises the cooperative cancellation flag. It takes effect at the
// next iteration boundary; the current transfer finishes first.
func (s *Service) Cancel() {
	s.cancelled.Store(true)
	s.logger.Info("cancellation requested")
}

// DownloadSingle downloads one video.
func (s *Service) DownloadSingle(ctx context.Context, url, format, quality string) bool {
	s.begin()
	ok := s.downloadSingle(ctx, url, format, quality)
	s.finish(ok)
	return ok
}

// DownloadCollection resolves a collection URL, skips already-retrieved
// items when skipExisting is set, and downloads the remainder sequentially.
// An empty candidate list is a success; per-item engine failures do not
// abort the loop. The result is success unless cancellation was observed.
func (s *Service) DownloadCollection(ctx context.Context, url, format, quality string, skipExisting bool) bool {
	s.begin()
	ok := s.downloadCollection(ctx, url, format, quality, skipExisting)
	s.finish(ok)
	return ok
}

// DownloadFromList iterates a caller-supplied URL list, dispatching each to
// the single-item or collection path by resolved type. One URL's failure is
// recorded and iteration continues.
func (s *Service) DownloadFromList(ctx context.Context, urls []string, format, quality string, skipExisting bool) []model.URLResult {
	s.begin()

	batchID := uuid.New().String()
	results := make([]model.URLResult, 0, len(urls))

	for i, url := range urls {
		if s.cancelled.Load() {
			s.logger.Info("batch cancelled", "batch", batchID, "remaining", len(urls)-i)
			break
		}

		s.logger.Info("batch item", "batch", batchID, "index", i+1, "total", len(urls), "url", url)

		info := s.engine.FetchInfo(ctx, url)
		if !info.Available() {
			results = append(results, model.URLResult{
				URL:   url,
				Error: "could not fetch information",
			})
			continue
		}

		var ok bool
		var kind string
		if info.Kind == model.InfoCollection {
			kind = "playlist"
			ok = s.downloadCollection(ctx, url, format, quality, skipExisting)
		} else {
			kind = "video"
			ok = s.downloadSingle(ctx, url, format, quality)
		}

		results = append(results, model.URLResult{
			URL:     url,
			Success: ok,
			Title:   info.Title(),
			Type:    kind,
		})
	}

	s.finish(true)
	return results
}

func (s *Service) downloadSingle(ctx context.Context, url, format, quality string) bool {
	s.reporter.Reset(1)
	s.setState(model.RunDownloading)
	return s.engine.DownloadOne(ctx, url, s.options(format, quality, false))
}

func (s *Service) downloadCollection(ctx context.Context, url, format, quality string, skipExisting bool) bool {
	s.setState(model.RunResolving)

	info := s.engine.FetchInfo(ctx, url)
	if !info.Available() {
		s.logger.Error("could not fetch information", "url", url)
		return false
	}

	var title string
	var items []*model.MediaItem
	switch info.Kind {
	case model.InfoCollection:
		title = info.Collection.Title
		items = info.Collection.Items
		s.reporter.Reset(info.Collection.AvailableCount())
	case model.InfoSingle:
		title = info.Item.Title
		s.reporter.Reset(0)
	}

	folder := filepath.Join(s.config.OutputDir, platform.SanitizeFilename(title))

	s.setState(model.RunFiltering)
	existing := map[string]struct{}{}
	if skipExisting {
		existing = ScanExistingIDs(folder)
	}

	var candidates []string
	for _, item := range items {
		if item == nil {
			continue
		}
		if skipExisting {
			if _, done := existing[item.ID]; done {
				s.logger.Info("skipping existing item", "id", item.ID, "title", item.Title)
				continue
			}
		}
		candidates = append(candidates, item.URL)
	}

	if len(candidates) == 0 {
		s.logger.Info("no new files to download", "collection", title)
		return true
	}

	s.setState(model.RunDownloading)
	opts := s.options(format, quality, true)

	for _, candidate := range candidates {
		if s.cancelled.Load() {
			s.logger.Info("collection download cancelled", "collection", title)
			break
		}
		// Per-item failures are logged by the engine and do not abort the loop.
		s.engine.DownloadOne(ctx, candidate, opts)
	}

	if s.cancelled.Load() {
		return false
	}

	s.logger.Info("collection download finished", "collection", title, "items", len(candidates))
	return true
}

func (s *Service) options(format, quality string, playlistMode bool) model.DownloadOptions {
	opts := model.NewDownloadOptions(format, quality, s.config.OutputDir, playlistMode)
	opts.EmbedThumbnails = s.config.EmbedThumbnails
	opts.SaveMetadata = s.config.SaveMetadata
	return opts
}

func (s *Service) begin() {
	s.cancelled.Store(false)
	s.setState(model.RunResolving)
}

func (s *Service) finish(ok bool) {
	switch {
	case s.cancelled.Load():
		s.setState(model.RunCancelled)
	case ok:
		s.setState(model.RunCompleted)
	default:
		s.setState(model.RunFailed)
	}
}

func (s *Service) setState(state model.RunState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
