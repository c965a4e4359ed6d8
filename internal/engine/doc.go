package engine

// Package engine wraps the external yt-dlp download engine (via
// github.com/lrstanley/go-ytdlp). It performs metadata-only info lookups,
// builds per-format option sets, runs single-item downloads, and issues
// flattened searches. Engine failures never propagate past this boundary:
// every call site converts them to an absent or false result plus a log
// line.
