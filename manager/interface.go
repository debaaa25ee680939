package manager

import (
	"context"
)

// Meteogram fetches meteograms and applies the requested rewrites.
type Meteogram interface {
	Get(ctx context.Context, request Request) (Document, error)
}

// Fetcher downloads the raw meteogram markup for a location.
type Fetcher interface {
	Get(ctx context.Context, locationID string, dark bool) (string, error)
}

type Request struct {
	LocationID  string
	Dark        bool
	Crop        bool
	Transparent bool
	// UnhideDark only applies to the dark variant.
	UnhideDark bool
}

type Document struct {
	LocationID string
	Dark       bool
	SVG        string
}

type Result struct {
	Document Document
	Err      error
}
