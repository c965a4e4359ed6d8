package platform

import "regexp"

// Known YouTube link shapes: watch, playlist, short, channel by id,
// custom name, and handle.
var validURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/watch\?v=[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/playlist\?list=[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?youtu\.be/[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/channel/[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/c/[\w-]+`),
	regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/@[\w-]+`),
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

var playlistIDPattern = regexp.MustCompile(`list=([0-9A-Za-z_-]+)`)

// IsValidURL reports whether url matches one of the known YouTube link
// shapes. Pure function, first match wins.
func IsValidURL(url string) bool {
	for _, pattern := range validURLPatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
// Returns false when no pattern matches.
func ExtractVideoID(url string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ExtractPlaylistID extracts the playlist ID from the list= query parameter.
// Returns false when the URL carries none.
func ExtractPlaylistID(url string) (string, bool) {
	if m := playlistIDPattern.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}
