package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytgrab/internal/model"
)

// URL template for rebuilding watch links from entry IDs.
const WatchURLTemplate = "https://www.youtube.com/watch?v=%s"

// How often yt-dlp progress updates are sampled.
const progressInterval = 500 * time.Millisecond

// Info payload type emitted by yt-dlp for playlists.
const typePlaylist = "playlist"

// infoJSON mirrors the engine's info dump. Entries may contain null elements
// for unavailable videos.
type infoJSON struct {
	Type       string                   `json:"_type"`
	ID         string                   `json:"id"`
	Title      string                   `json:"title"`
	Uploader   string                   `json:"uploader"`
	Duration   float64                  `json:"duration"`
	UploadDate string                   `json:"upload_date"`
	WebpageURL string                   `json:"webpage_url"`
	URL        string                   `json:"url"`
	Entries    []*infoJSON              `json:"entries"`
	Formats    []model.FormatDescriptor `json:"formats"`
}

// Client adapts the yt-dlp engine to the orchestrator.
type Client struct {
	logger   *slog.Logger
	observer func(model.ProgressRecord)
}

// New creates an engine client.
func New(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{logger: logger}
}

// SetProgressObserver registers the observer that receives normalized
// progress records during downloads. Exactly one observer is registered at
// a time.
func (c *Client) SetProgressObserver(fn func(model.ProgressRecord)) {
	c.observer = fn
}

// FetchInfo performs a metadata-only query for a video or playlist URL.
// Any lookup failure (network error, invalid id, private or removed
// content) yields an unavailable result.
func (c *Client) FetchInfo(ctx context.Context, url string) model.Info {
	raw, err := c.fetchRaw(ctx, url, false)
	if err != nil {
		c.logger.Error("info lookup failed", "url", url, "error", err)
		return model.Unavailable()
	}
	return c.toInfo(raw)
}

// ListFormats returns the format descriptors available for a single video,
// or nil when the lookup fails or resolves a collection.
func (c *Client) ListFormats(ctx context.Context, url string) []model.FormatDescriptor {
	raw, err := c.fetchRaw(ctx, url, false)
	if err != nil {
		c.logger.Error("format lookup failed", "url", url, "error", err)
		return nil
	}
	if raw.Type == typePlaylist || len(raw.Entries) > 0 {
		return nil
	}
	return raw.Formats
}

// Search issues a flattened search query capped at maxResults. On failure
// it returns an empty result, never an error.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []model.MediaItem {
	searchURL := fmt.Sprintf("ytsearch%d:%s", maxResults, query)

	raw, err := c.fetchRaw(ctx, searchURL, true)
	if err != nil {
		c.logger.Error("search failed", "query", query, "error", err)
		return nil
	}

	items := make([]model.MediaItem, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		if entry == nil {
			continue
		}
		items = append(items, *entry.toMediaItem())
	}
	return items
}

// DownloadOne invokes the engine once for one URL under the given options.
// Success means the engine call completed without error; failures are
// logged and reported as false, never raised to the caller.
func (c *Client) DownloadOne(ctx context.Context, url string, opts model.DownloadOptions) bool {
	dl := c.downloadCommand(opts)

	if _, err := dl.Run(ctx, url); err != nil {
		c.logger.Error("download failed", "url", url, "error", err)
		return false
	}

	c.logger.Info("download completed", "url", url)
	return true
}

func (c *Client) fetchRaw(ctx context.Context, url string, flat bool) (*infoJSON, error) {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		SkipDownload().
		DumpSingleJSON()
	if flat {
		dl = dl.FlatPlaylist()
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw infoJSON
	if err := json.Unmarshal([]byte(result.Stdout), &raw); err != nil {
		return nil, fmt.Errorf("decode info dump: %w", err)
	}
	return &raw, nil
}

// toInfo discriminates the engine payload into the tagged info shape.
// Playlists keep nil entries so callers can skip unavailable items without
// losing positions.
func (c *Client) toInfo(raw *infoJSON) model.Info {
	if raw.Type == typePlaylist || len(raw.Entries) > 0 {
		items := make([]*model.MediaItem, 0, len(raw.Entries))
		for _, entry := range raw.Entries {
			if entry == nil {
				items = append(items, nil)
				continue
			}
			items = append(items, entry.toMediaItem())
		}
		return model.CollectionOf(&model.CollectionInfo{
			Title: raw.Title,
			Items: items,
		})
	}
	return model.SingleInfo(raw.toMediaItem())
}

func (e *infoJSON) toMediaItem() *model.MediaItem {
	url := e.WebpageURL
	if url == "" {
		url = e.URL
	}
	if url == "" && e.ID != "" {
		url = fmt.Sprintf(WatchURLTemplate, e.ID)
	}

	return &model.MediaItem{
		ID:         e.ID,
		Title:      e.Title,
		Uploader:   e.Uploader,
		Duration:   int(e.Duration),
		UploadDate: e.UploadDate,
		URL:        url,
	}
}

// handleProgress normalizes a yt-dlp progress update and republishes it to
// the registered observer.
func (c *Client) handleProgress(update ytdlp.ProgressUpdate) {
	if c.observer == nil {
		return
	}

	record := model.ProgressRecord{Filename: update.Filename}

	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		record.Status = model.ProgressDownloading
	case ytdlp.ProgressStatusFinished:
		record.Status = model.ProgressFinished
	default:
		return
	}

	if update.TotalBytes > 0 {
		record.Percent = float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			bytesPerSecond := float64(update.DownloadedBytes) / elapsed.Seconds()
			record.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		}
	}

	if eta := update.ETA(); eta > 0 {
		record.ETA = eta.Round(time.Second).String()
	}

	c.observer(record)
}
