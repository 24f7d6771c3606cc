package controller

import (
	"context"
	"io"
	"log/slog"

	"github.com/iw2rmb/genkou/essay"
	"github.com/iw2rmb/genkou/grid"
	"github.com/iw2rmb/genkou/section"
)

// Submitter sends a document for review and returns the document to load
// in its place.
type Submitter interface {
	Submit(ctx context.Context, doc essay.Document) (essay.Document, error)
}

// Config configures a Controller.
type Config struct {
	// CharsPerLine is the grid width; zero means grid.DefaultCharsPerLine.
	CharsPerLine int
	// GridMode starts the editor in manuscript grid mode.
	GridMode bool

	// Submitter is optional; Submit fails with ErrNoSubmitter without it.
	Submitter Submitter

	// Callbacks are forwarded every section change.
	Callbacks section.Callbacks

	// Logger defaults to a discarding logger.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.CharsPerLine <= 0 {
		c.CharsPerLine = grid.DefaultCharsPerLine
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}
