package model

import "fmt"

// MediaItem represents a single remote media item resolved by the engine.
// Immutable once fetched.
type MediaItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Uploader   string `json:"uploader"`
	Duration   int    `json:"duration"`    // seconds, non-negative
	UploadDate string `json:"upload_date"` // calendar string, YYYYMMDD
	URL        string `json:"webpage_url"`
}

// DurationString returns the duration formatted as HH:MM:SS or MM:SS.
func (m *MediaItem) DurationString() string {
	if m.Duration <= 0 {
		return "00:00"
	}

	hours := m.Duration / 3600
	minutes := (m.Duration % 3600) / 60
	seconds := m.Duration % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// CollectionInfo represents a named, ordered group of remote items, such as
// a playlist. Items may contain nil entries for unavailable videos; callers
// must skip them rather than fail the whole collection.
type CollectionInfo struct {
	Title string
	Items []*MediaItem
}

// AvailableCount returns the number of non-nil entries.
func (c *CollectionInfo) AvailableCount() int {
	count := 0
	for _, item := range c.Items {
		if item != nil {
			count++
		}
	}
	return count
}

// FormatDescriptor describes one downloadable format reported by the engine.
type FormatDescriptor struct {
	ID         string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	Height     int     `json:"height"`
	Bitrate    float64 `json:"tbr"`
	Note       string  `json:"format_note"`
}

// InfoKind discriminates the result of an engine info lookup.
type InfoKind string

const (
	// InfoSingle means the lookup resolved a single media item.
	InfoSingle InfoKind = "video"

	// InfoCollection means the lookup resolved a playlist or channel.
	InfoCollection InfoKind = "playlist"

	// InfoUnavailable means the lookup failed (network error, invalid id,
	// private or removed content).
	InfoUnavailable InfoKind = "unavailable"
)

// Info is the tagged result of an engine info lookup. Exactly one of Item or
// Collection is set according to Kind.
type Info struct {
	Kind       InfoKind
	Item       *MediaItem
	Collection *CollectionInfo
}

// SingleInfo wraps a media item as an info lookup result.
func SingleInfo(item *MediaItem) Info {
	return Info{Kind: InfoSingle, Item: item}
}

// CollectionOf wraps collection info as an info lookup result.
func CollectionOf(c *CollectionInfo) Info {
	return Info{Kind: InfoCollection, Collection: c}
}

// Unavailable returns the info result for a failed lookup.
func Unavailable() Info {
	return Info{Kind: InfoUnavailable}
}

// Available returns true if the lookup resolved anything.
func (i Info) Available() bool {
	return i.Kind != InfoUnavailable
}

// Title returns the resolved title, or empty when unavailable.
func (i Info) Title() string {
	switch i.Kind {
	case InfoSingle:
		return i.Item.Title
	case InfoCollection:
		return i.Collection.Title
	}
	return ""
}
