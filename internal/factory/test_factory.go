package factory

import (
	"io"
	"log/slog"
)

// NewTestApp creates an App configured for testing: in-memory storage
// and a discarded log stream.
func NewTestApp() *App {
	return NewTestAppWithUploads("")
}

// NewTestAppWithUploads is NewTestApp with a real uploads directory for
// tests that exercise artwork storage.
func NewTestAppWithUploads(uploadsDir string) *App {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return newWithStores(memoryStores(), uploadsDir, logger)
}
