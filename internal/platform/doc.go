package platform

// Package platform contains OS and filesystem glue shared by the services:
// URL shape validation, filename sanitization, directory helpers, and
// human-readable formatting.
