package maintain

// Package maintain provides maintenance tools for the download directory:
// storage accounting, temp-file purging, empty-directory pruning, date-based
// reorganization, and an audio quality report. Per-file filesystem errors
// are swallowed and skipped; final counts reflect only successful
// operations.
