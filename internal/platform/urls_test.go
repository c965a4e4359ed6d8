package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"watch link", "https://www.youtube.com/watch?v=abc123XYZ9_", true},
		{"watch link no www", "https://youtube.com/watch?v=abc123XYZ9_", true},
		{"watch link no scheme", "youtube.com/watch?v=abc123XYZ9_", true},
		{"short link", "https://youtu.be/abc123XYZ9_", true},
		{"playlist link", "https://www.youtube.com/playlist?list=PLabc123", true},
		{"channel by id", "https://www.youtube.com/channel/UCabc123", true},
		{"channel custom name", "https://www.youtube.com/c/SomeChannel", true},
		{"channel handle", "https://www.youtube.com/@somehandle", true},
		{"empty", "", false},
		{"plain text", "not a url", false},
		{"other site", "https://vimeo.com/123456", false},
		{"bare domain", "https://www.youtube.com/", false},
		{"watch without id", "https://www.youtube.com/watch?v=", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidURL(tt.url))
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		id    string
		found bool
	}{
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42", "dQw4w9WgXcQ", true},
		{"no id", "https://www.youtube.com/", "", false},
		{"id too short", "https://www.youtube.com/watch?v=short", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := ExtractVideoID(tt.url)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	id, found := ExtractPlaylistID("https://www.youtube.com/playlist?list=PLabc_123-XYZ")
	assert.True(t, found)
	assert.Equal(t, "PLabc_123-XYZ", id)

	id, found = ExtractPlaylistID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL42")
	assert.True(t, found)
	assert.Equal(t, "PL42", id)

	_, found = ExtractPlaylistID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	assert.False(t, found)
}
