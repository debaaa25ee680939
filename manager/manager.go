package manager

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"meteogram/markup"
	"meteogram/observability"
)

func New(fetcher Fetcher, logger *zap.SugaredLogger, metrics *observability.Metrics) *meteogram {
	return &meteogram{
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
}

type meteogram struct {
	fetcher Fetcher
	logger  *zap.SugaredLogger
	metrics *observability.Metrics
}

type step struct {
	name      string
	transform markup.Transform
}

// Get fetches the meteogram and rewrites it. The rewrites always run in the
// same order: crop, transparent, unhide dark details.
func (m *meteogram) Get(ctx context.Context, request Request) (Document, error) {
	svg, err := m.fetcher.Get(ctx, request.LocationID, request.Dark)
	if err != nil {
		return Document{}, fmt.Errorf("fetch meteogram %s: %w", request.LocationID, err)
	}

	for _, s := range steps(request) {
		out := s.transform(svg)

		result := "applied"
		if out == svg {
			result = "noop"
			m.logger.Warnw("transform left meteogram unchanged, upstream markup may have changed",
				"transform", s.name,
				"location", request.LocationID,
			)
		}
		m.metrics.Transforms.WithLabelValues(s.name, result).Inc()

		svg = out
	}

	return Document{
		LocationID: request.LocationID,
		Dark:       request.Dark,
		SVG:        svg,
	}, nil
}

// GetAsync runs Get in its own goroutine. The channel receives exactly one
// Result and is then closed.
func (m *meteogram) GetAsync(ctx context.Context, request Request) <-chan Result {
	resultChannel := make(chan Result, 1)

	go func() {
		defer close(resultChannel)

		document, err := m.Get(ctx, request)
		resultChannel <- Result{Document: document, Err: err}
	}()

	return resultChannel
}

func steps(request Request) []step {
	var s []step

	if request.Crop {
		s = append(s, step{name: "crop", transform: markup.Crop})
	}
	if request.Transparent {
		s = append(s, step{name: "transparent", transform: markup.MakeTransparent})
	}
	if request.Dark && request.UnhideDark {
		s = append(s, step{name: "unhide_dark", transform: markup.UnhideDarkDetails})
	}

	return s
}
