// Package usecase implements merchant site resolution: a backend lookup with
// bounded retry and a deterministic offline fallback. This is the one SDK
// component that intentionally swallows failures; the contract guarantees a
// usable site id so initialization can always proceed.
package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
	"github.com/zydeico/sdk-go/internal/gateway"
	"github.com/zydeico/sdk-go/internal/metrics"
	"github.com/zydeico/sdk-go/internal/site/domain"
)

const siteIDPath = "/v1/site_id"

// maxResolveCalls bounds one resolution chain: the initial call plus up to
// three retries.
const maxResolveCalls = 4

// SiteResolver resolves the merchant site id needed to route requests.
type SiteResolver interface {
	// ResolveSiteID never fails; after bounded retry it falls back to the
	// static country table. There is no backoff between attempts.
	ResolveSiteID(ctx context.Context, publicKey, country string) string
}

// siteResolver implements SiteResolver over the network gateway.
type siteResolver struct {
	gw      gateway.Gateway
	logger  *slog.Logger
	metrics metrics.BusinessMetrics
	group   singleflight.Group
}

// NewSiteResolver creates the site resolution use case.
func NewSiteResolver(gw gateway.Gateway, logger *slog.Logger, m metrics.BusinessMetrics) SiteResolver {
	return &siteResolver{gw: gw, logger: logger, metrics: m}
}

// siteIDResponse is the backend response for the site-id endpoint.
type siteIDResponse struct {
	SiteID string `json:"site_id"`
}

// ResolveSiteID resolves the site id for a public key and country.
// Concurrent identical resolutions are collapsed into one chain.
func (r *siteResolver) ResolveSiteID(ctx context.Context, publicKey, country string) string {
	start := time.Now()
	value, _, _ := r.group.Do(publicKey+"|"+country, func() (any, error) {
		return r.resolve(ctx, publicKey, country), nil
	})
	siteID := value.(string)

	r.metrics.RecordDuration(ctx, "site", "site_resolve", time.Since(start), "success")
	return siteID
}

// resolve runs one bounded resolution chain. The attempt counter is local to
// this call so concurrent chains cannot contaminate each other.
func (r *siteResolver) resolve(ctx context.Context, publicKey, country string) string {
	for calls := 1; calls <= maxResolveCalls; calls++ {
		resp, err := r.gw.Execute(ctx, gateway.Request{
			Method: http.MethodGet,
			Path:   siteIDPath,
			Query: url.Values{
				"public_key": []string{publicKey},
				"country":    []string{country},
			},
		})
		if err != nil {
			if retryable(err) {
				r.logger.DebugContext(ctx, "site resolution attempt failed",
					slog.Int("call", calls),
					slog.String("error", err.Error()),
				)
				continue
			}
			break
		}

		var wire siteIDResponse
		if err := gateway.DecodeJSON(resp, &wire); err != nil || wire.SiteID == "" {
			// Malformed response is not retryable.
			break
		}

		r.metrics.RecordOperation(ctx, "site", "site_resolve", "backend")
		return wire.SiteID
	}

	fallback := domain.SiteForCountry(country)
	r.logger.InfoContext(ctx, "site resolution fell back to static table",
		slog.String("country", country),
		slog.String("site_id", fallback),
	)
	r.metrics.RecordOperation(ctx, "site", "site_resolve", "fallback")
	return fallback
}

// retryable reports whether a resolution attempt may be repeated.
// Transport and API failures are retryable; anything else aborts the chain.
func retryable(err error) bool {
	return apperrors.Is(err, apperrors.ErrTransport) || apperrors.Is(err, apperrors.ErrAPI)
}
