package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Settings keys
const (
	KeyDownloadPath          = "download_path"
	KeyDefaultFormat         = "default_format"
	KeyDefaultQuality        = "default_quality"
	KeySkipExisting          = "skip_existing"
	KeyCreatePlaylistFolders = "create_playlist_folders"
	KeyEmbedThumbnails       = "embed_thumbnails"
	KeySaveMetadata          = "save_metadata"
	KeyMaxConcurrent         = "max_concurrent_downloads"
	KeyTheme                 = "theme"
)

const (
	appDirName       = "ytgrab"
	settingsFileName = "settings.json"
)

// Settings manages the persisted application configuration: a flat JSON
// document merged over built-in defaults. Unknown keys survive a load/save
// round trip.
type Settings struct {
	path   string
	values map[string]any
}

// Defaults returns the built-in default settings.
func Defaults() map[string]any {
	return map[string]any{
		KeyDownloadPath:          defaultDownloadPath(),
		KeyDefaultFormat:         "mp3",
		KeyDefaultQuality:        "192",
		KeySkipExisting:          true,
		KeyCreatePlaylistFolders: true,
		KeyEmbedThumbnails:       true,
		KeySaveMetadata:          true,
		KeyMaxConcurrent:         3,
		KeyTheme:                 "dark",
	}
}

func defaultDownloadPath() string {
	if xdg.UserDirs.Download != "" {
		return filepath.Join(xdg.UserDirs.Download, "YouTube")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "downloads")
	}
	return filepath.Join(home, "Downloads", "YouTube")
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, settingsFileName)
}

// Load reads settings from the per-user path, merging the persisted document
// over the defaults.
func Load() *Settings {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads settings from an explicit path. A missing or unreadable
// document yields the defaults; a present document is merged over them so
// keys absent from disk keep their built-in values.
func LoadFrom(path string) *Settings {
	values := Defaults()

	if data, err := os.ReadFile(path); err == nil {
		var saved map[string]any
		if err := json.Unmarshal(data, &saved); err == nil {
			for k, v := range saved {
				values[k] = v
			}
		}
	}

	return &Settings{path: path, values: values}
}

// Path returns where the settings document is persisted.
func (s *Settings) Path() string {
	return s.path
}

// Get returns the raw value for key, or nil when unset.
func (s *Settings) Get(key string) any {
	return s.values[key]
}

// GetString returns the value for key as a string.
func (s *Settings) GetString(key string) string {
	if v, ok := s.values[key].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the value for key as a bool.
func (s *Settings) GetBool(key string) bool {
	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return false
}

// GetInt returns the value for key as an int. JSON numbers decode as
// float64, so both representations are accepted.
func (s *Settings) GetInt(key string) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Set stores a value in memory. Call Save to persist.
func (s *Settings) Set(key string, value any) {
	s.values[key] = value
}

// Keys returns every key currently held, including unknown ones loaded from
// disk.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Save writes the full settings document to its path.
func (s *Settings) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Reset deletes the persisted document and restores the defaults in memory.
func (s *Settings) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.values = Defaults()
	return nil
}
