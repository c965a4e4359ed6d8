package platform

import (
	"fmt"
	"os"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Filename constraints
const (
	MaxFilenameLength    = 200
	InvalidFilenameChars = `<>:"/\|?*`
)

// EnsureDir creates the directory if it doesn't exist.
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// SanitizeFilename replaces characters not allowed in file names with
// underscores and caps the length so titles can be used as folder names.
func SanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(InvalidFilenameChars, r) {
			return '_'
		}
		return r
	}, name)

	runes := []rune(sanitized)
	if len(runes) > MaxFilenameLength {
		sanitized = string(runes[:MaxFilenameLength])
	}
	return strings.TrimSpace(sanitized)
}

// FormatFileSize formats a byte count as a human readable string.
func FormatFileSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(sizeBytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}

// FormatDuration formats seconds as HH:MM:SS, or MM:SS under an hour.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
