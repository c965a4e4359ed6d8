package download

// Package download implements the orchestration layer over the engine
// adapter: collection and batch downloads with duplicate skipping,
// cooperative cancellation between items, sidecar-based history, and
// normalized progress reporting. Playlist items are downloaded strictly
// sequentially; all network retry behavior lives in the engine.
