package model

// Supported audio output formats and their default quality tokens.
var AudioFormats = map[string]string{
	"mp3":  "192",
	"flac": "best",
	"wav":  "best",
	"m4a":  "192",
	"ogg":  "192",
}

// Supported video container formats.
var VideoFormats = map[string]bool{
	"mp4":  true,
	"webm": true,
	"mkv":  true,
	"avi":  true,
}

// VideoQualities maps quality tokens to a vertical resolution ceiling.
// Zero means no ceiling.
var VideoQualities = map[string]int{
	"144p":  144,
	"240p":  240,
	"360p":  360,
	"480p":  480,
	"720p":  720,
	"1080p": 1080,
	"1440p": 1440,
	"2160p": 2160,
	"best":  0,
}

// IsAudioFormat reports whether format is a supported audio output format.
func IsAudioFormat(format string) bool {
	_, ok := AudioFormats[format]
	return ok
}

// IsVideoFormat reports whether format is a supported video container.
func IsVideoFormat(format string) bool {
	return VideoFormats[format]
}

// IsSupportedFormat reports whether format is a supported output format.
func IsSupportedFormat(format string) bool {
	return IsAudioFormat(format) || IsVideoFormat(format)
}

// DownloadOptions configures one engine download call. Constructed fresh per
// call and never mutated mid-flight.
type DownloadOptions struct {
	Format          string // one of AudioFormats or VideoFormats
	Quality         string // bitrate token for audio, resolution token for video
	OutputDir       string
	PlaylistMode    bool // adds a collection-title directory level to the output path
	EmbedThumbnails bool
	SaveMetadata    bool // write the .info.json sidecar per retrieved item
}

// NewDownloadOptions builds download options with thumbnail embedding and
// sidecar metadata enabled, matching the default download configuration.
func NewDownloadOptions(format, quality, outputDir string, playlistMode bool) DownloadOptions {
	if quality == "" {
		if q, ok := AudioFormats[format]; ok {
			quality = q
		} else {
			quality = "best"
		}
	}

	return DownloadOptions{
		Format:          format,
		Quality:         quality,
		OutputDir:       outputDir,
		PlaylistMode:    playlistMode,
		EmbedThumbnails: true,
		SaveMetadata:    true,
	}
}
