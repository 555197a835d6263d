package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNilStore is returned when Collect or Render receive no store.
	ErrNilStore = errors.New("tui: form store is nil")
)
