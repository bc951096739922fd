package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
	"github.com/zydeico/sdk-go/internal/gateway"
)

// GatewayMetrics records outbound backend call counts and latencies.
type GatewayMetrics struct {
	requestCounter metric.Int64Counter
	durationHisto  metric.Float64Histogram
}

// NewGatewayMetrics creates outbound request instrumentation using the
// provided meter provider. The namespace prefixes all metric names.
func NewGatewayMetrics(meterProvider metric.MeterProvider, namespace string) (*GatewayMetrics, error) {
	meter := meterProvider.Meter(namespace)

	requestCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_backend_requests_total", namespace),
		metric.WithDescription("Total number of backend requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_backend_request_duration_seconds", namespace),
		metric.WithDescription("Duration of backend requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request duration histogram: %w", err)
	}

	return &GatewayMetrics{
		requestCounter: requestCounter,
		durationHisto:  durationHisto,
	}, nil
}

// instrumentedGateway decorates a Gateway with request metrics.
type instrumentedGateway struct {
	next    gateway.Gateway
	metrics *GatewayMetrics
}

// NewInstrumentedGateway wraps a Gateway with outbound request metrics.
func NewInstrumentedGateway(next gateway.Gateway, m *GatewayMetrics) gateway.Gateway {
	return &instrumentedGateway{next: next, metrics: m}
}

// Execute records count and duration for the wrapped gateway call, labeled by
// method, path, and outcome classification.
func (g *instrumentedGateway) Execute(ctx context.Context, req gateway.Request) (*gateway.Response, error) {
	start := time.Now()
	resp, err := g.next.Execute(ctx, req)

	attrs := metric.WithAttributes(
		attribute.String("method", req.Method),
		attribute.String("path", req.Path),
		attribute.String("outcome", outcome(err)),
	)
	g.metrics.requestCounter.Add(ctx, 1, attrs)
	g.metrics.durationHisto.Record(ctx, time.Since(start).Seconds(), attrs)

	return resp, err
}

// outcome maps a gateway result to a low-cardinality label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.Is(err, apperrors.ErrTransport):
		return "transport_error"
	case apperrors.Is(err, apperrors.ErrAPI):
		return "api_error"
	default:
		return "error"
	}
}
