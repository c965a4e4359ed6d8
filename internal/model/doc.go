package model

// Package model defines domain data structures used across the app: media
// items and collections resolved from the engine, download options, progress
// records, sidecar metadata, and run status enums. Structures carry explicit
// state and are shared between the orchestrator and presentation layers.
