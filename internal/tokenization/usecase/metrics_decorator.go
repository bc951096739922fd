package usecase

import (
	"context"
	"time"

	"github.com/zydeico/sdk-go/internal/metrics"
	"github.com/zydeico/sdk-go/internal/tokenization/domain"
)

// cardTokenUseCaseWithMetrics decorates CardTokenUseCase with metrics instrumentation.
type cardTokenUseCaseWithMetrics struct {
	next    CardTokenUseCase
	metrics metrics.BusinessMetrics
}

// NewCardTokenUseCaseWithMetrics wraps a CardTokenUseCase with metrics recording.
func NewCardTokenUseCaseWithMetrics(useCase CardTokenUseCase, m metrics.BusinessMetrics) CardTokenUseCase {
	return &cardTokenUseCaseWithMetrics{next: useCase, metrics: m}
}

// CreateToken records metrics for card tokenization operations.
func (u *cardTokenUseCaseWithMetrics) CreateToken(
	ctx context.Context,
	params *domain.CardParams,
) (*domain.CardToken, error) {
	start := time.Now()
	token, err := u.next.CreateToken(ctx, params)

	status := metrics.Status(err)
	u.metrics.RecordOperation(ctx, "tokenization", "card_token_create", status)
	u.metrics.RecordDuration(ctx, "tokenization", "card_token_create", time.Since(start), status)

	return token, err
}

// applePayUseCaseWithMetrics decorates ApplePayUseCase with metrics instrumentation.
type applePayUseCaseWithMetrics struct {
	next    ApplePayUseCase
	metrics metrics.BusinessMetrics
}

// NewApplePayUseCaseWithMetrics wraps an ApplePayUseCase with metrics recording.
func NewApplePayUseCaseWithMetrics(useCase ApplePayUseCase, m metrics.BusinessMetrics) ApplePayUseCase {
	return &applePayUseCaseWithMetrics{next: useCase, metrics: m}
}

// CreateToken records metrics for Apple Pay tokenization operations.
func (u *applePayUseCaseWithMetrics) CreateToken(
	ctx context.Context,
	credential domain.WalletCredential,
	testStatus string,
) (*domain.ApplePayToken, error) {
	start := time.Now()
	token, err := u.next.CreateToken(ctx, credential, testStatus)

	status := metrics.Status(err)
	u.metrics.RecordOperation(ctx, "tokenization", "applepay_token_create", status)
	u.metrics.RecordDuration(ctx, "tokenization", "applepay_token_create", time.Since(start), status)

	return token, err
}
