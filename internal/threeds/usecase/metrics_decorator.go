package usecase

import (
	"context"
	"time"

	"github.com/zydeico/sdk-go/internal/metrics"
	"github.com/zydeico/sdk-go/internal/threeds/domain"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{next: useCase, metrics: m}
}

// Authenticate records metrics for authentication attempts.
func (u *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	transaction domain.Transaction,
	token string,
	params domain.AuthRequestParameters,
) (*domain.Authenticated, error) {
	start := time.Now()
	authenticated, err := u.next.Authenticate(ctx, transaction, token, params)

	status := metrics.Status(err)
	u.metrics.RecordOperation(ctx, "threeds", "authenticate", status)
	u.metrics.RecordDuration(ctx, "threeds", "authenticate", time.Since(start), status)

	return authenticated, err
}
