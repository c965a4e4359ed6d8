package engine

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/ytgrab/internal/model"
)

// downloadCommand maps download options onto an engine invocation. Audio
// formats pull the best audio stream and transcode to the requested codec;
// video formats select a stream by container extension and resolution
// ceiling with no transcoding.
func (c *Client) downloadCommand(opts model.DownloadOptions) *ytdlp.Command {
	dl := ytdlp.New().
		IgnoreErrors().
		NoOverwrites().
		Output(OutputTemplate(opts.OutputDir, opts.PlaylistMode))

	if opts.SaveMetadata {
		dl = dl.WriteInfoJSON()
	}

	if model.IsAudioFormat(opts.Format) {
		dl = dl.Format("bestaudio/best").
			ExtractAudio().
			AudioFormat(opts.Format).
			AudioQuality(opts.Quality).
			EmbedMetadata()
		if opts.EmbedThumbnails {
			dl = dl.WriteThumbnail().EmbedThumbnail()
		}
	} else {
		dl = dl.Format(VideoSelector(opts.Format, opts.Quality)).
			EmbedMetadata()
		if opts.EmbedThumbnails {
			dl = dl.EmbedThumbnail()
		}
	}

	if c.observer != nil {
		dl.ProgressFunc(progressInterval, c.handleProgress)
	}
	return dl
}

// OutputTemplate returns the engine output path template. Playlist mode adds
// a collection-title directory level; single mode groups by uploader.
func OutputTemplate(dir string, playlistMode bool) string {
	if playlistMode {
		return filepath.Join(dir, "%(playlist_title)s", "%(title)s.%(ext)s")
	}
	return filepath.Join(dir, "%(uploader)s", "%(title)s.%(ext)s")
}

// VideoSelector builds the engine format selector for a video container and
// quality token. Unknown tokens fall back to no resolution ceiling.
func VideoSelector(format, quality string) string {
	height, ok := model.VideoQualities[quality]
	if !ok {
		// Tolerate bare numeric tokens like "720".
		if n, err := strconv.Atoi(strings.TrimSuffix(quality, "p")); err == nil {
			height = n
		}
	}

	if height > 0 {
		return fmt.Sprintf("best[ext=%s][height<=%d]", format, height)
	}
	return fmt.Sprintf("best[ext=%s]", format)
}
