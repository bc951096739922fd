// Package usecase implements the tokenization flows: exchanging raw card
// fields or wallet credentials for opaque backend tokens.
package usecase

import (
	"context"

	"github.com/zydeico/sdk-go/internal/tokenization/domain"
)

// CardTokenUseCase exchanges raw card fields for an opaque card token.
type CardTokenUseCase interface {
	// CreateToken tokenizes the card. The params are cleared before it
	// returns, on success and on failure alike.
	CreateToken(ctx context.Context, params *domain.CardParams) (*domain.CardToken, error)
}

// ApplePayUseCase exchanges a wallet payment credential for an opaque token
// with its associated BIN.
type ApplePayUseCase interface {
	// CreateToken tokenizes the wallet credential. testStatus marks
	// non-production flows and is omitted from the request when empty.
	CreateToken(ctx context.Context, credential domain.WalletCredential, testStatus string) (*domain.ApplePayToken, error)
}

// FingerprintCollector is the on-device fingerprint collaborator contract.
// Collection is best-effort: a nil payload or an error means no fingerprint
// is available and must never fail the surrounding flow.
type FingerprintCollector interface {
	Collect(ctx context.Context) ([]byte, error)
}
