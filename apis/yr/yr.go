package yr

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"meteogram/config"
	"meteogram/observability"
)

const meteogramPath = "/en/content/{locationId}/meteogram.svg"

var (
	ErrRequest = errors.New("meteogram request failed")
	ErrStatus  = errors.New("unexpected status")
)

// StatusError is returned when yr.no answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d\n%s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

func New(cfg config.Yr, logger *zap.SugaredLogger, metrics *observability.Metrics) *client {
	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "image/svg+xml")

	return &client{
		rest:    rest,
		clock:   clockwork.NewRealClock(),
		logger:  logger,
		metrics: metrics,
	}
}

type client struct {
	rest    *resty.Client
	clock   clockwork.Clock
	logger  *zap.SugaredLogger
	metrics *observability.Metrics
}

// Get downloads the meteogram for a location, the dark variant when dark is set.
func (c *client) Get(ctx context.Context, locationID string, dark bool) (string, error) {
	ctx, span := otel.Tracer("meteogram/apis/yr").Start(ctx, "yr.meteogram")
	defer span.End()

	span.SetAttributes(
		attribute.String("yr.location_id", locationID),
		attribute.Bool("yr.dark", dark),
	)

	request := c.rest.R().
		SetContext(ctx).
		SetPathParam("locationId", locationID)

	if dark {
		request.SetQueryParam("mode", "dark")
	}

	start := c.clock.Now()
	response, err := request.Get(meteogramPath)
	c.metrics.FetchDuration.Observe(c.clock.Since(start).Seconds())

	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("network_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", response.StatusCode()))

	if !response.IsSuccess() {
		c.metrics.FetchRequests.WithLabelValues("http_error").Inc()
		span.SetStatus(codes.Error, "status "+strconv.Itoa(response.StatusCode()))

		return "", &StatusError{StatusCode: response.StatusCode(), Body: response.String()}
	}

	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	c.metrics.FetchBytes.Observe(float64(len(response.Body())))

	c.logger.Debugw("meteogram fetched",
		"url", response.Request.URL,
		"status", response.StatusCode(),
		"bytes", len(response.Body()),
	)

	return response.String(), nil
}
