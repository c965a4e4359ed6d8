package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytgrab/internal/model"
)

func TestToInfoSingle(t *testing.T) {
	c := New(nil)

	info := c.toInfo(&infoJSON{
		ID:         "dQw4w9WgXcQ",
		Title:      "Song",
		Uploader:   "Artist",
		Duration:   212.4,
		UploadDate: "20091025",
		WebpageURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})

	require.Equal(t, model.InfoSingle, info.Kind)
	assert.Equal(t, "dQw4w9WgXcQ", info.Item.ID)
	assert.Equal(t, 212, info.Item.Duration)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", info.Item.URL)
}

func TestToInfoCollectionKeepsNilEntries(t *testing.T) {
	c := New(nil)

	info := c.toInfo(&infoJSON{
		Type:  typePlaylist,
		Title: "My List",
		Entries: []*infoJSON{
			{ID: "aaaaaaaaaaa", Title: "First"},
			nil, // unavailable video
			{ID: "bbbbbbbbbbb", Title: "Third"},
		},
	})

	require.Equal(t, model.InfoCollection, info.Kind)
	require.Len(t, info.Collection.Items, 3)
	assert.Nil(t, info.Collection.Items[1])
	assert.Equal(t, 2, info.Collection.AvailableCount())
}

func TestToMediaItemURLFallback(t *testing.T) {
	// Flat entries often carry no webpage_url; the watch link is rebuilt
	// from the id.
	item := (&infoJSON{ID: "ccccccccccc", Title: "Flat"}).toMediaItem()
	assert.Equal(t, "https://www.youtube.com/watch?v=ccccccccccc", item.URL)

	item = (&infoJSON{ID: "ddddddddddd", URL: "https://youtu.be/ddddddddddd"}).toMediaItem()
	assert.Equal(t, "https://youtu.be/ddddddddddd", item.URL)
}

func TestInfoDumpDecoding(t *testing.T) {
	// Null playlist entries must survive decoding.
	payload := `{
		"_type": "playlist",
		"title": "Mixed",
		"entries": [
			{"id": "aaaaaaaaaaa", "title": "Ok", "duration": 10},
			null
		],
		"formats": [{"format_id": "22", "ext": "mp4", "height": 720, "tbr": 1200.5}]
	}`

	var raw infoJSON
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	require.Len(t, raw.Entries, 2)
	assert.Nil(t, raw.Entries[1])
	require.Len(t, raw.Formats, 1)
	assert.Equal(t, "22", raw.Formats[0].ID)
	assert.Equal(t, 720, raw.Formats[0].Height)
}
