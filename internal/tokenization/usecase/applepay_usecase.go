package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/zydeico/sdk-go/internal/gateway"
	"github.com/zydeico/sdk-go/internal/tokenization/domain"
	"github.com/zydeico/sdk-go/internal/tokenization/dto"
)

const applePayTokenizePath = "/v1/tokenize"

// applePayUseCase implements ApplePayUseCase over the network gateway.
type applePayUseCase struct {
	gw        gateway.Gateway
	collector FingerprintCollector
	productID string
	logger    *slog.Logger
}

// NewApplePayUseCase creates the Apple Pay tokenization use case.
// collector may be nil when no fingerprint collaborator is available.
func NewApplePayUseCase(
	gw gateway.Gateway,
	collector FingerprintCollector,
	productID string,
	logger *slog.Logger,
) ApplePayUseCase {
	return &applePayUseCase{
		gw:        gw,
		collector: collector,
		productID: productID,
		logger:    logger,
	}
}

// CreateToken exchanges the wallet credential for an opaque token. The device
// fingerprint is attached when the collaborator yields one; collection
// failure only drops the field. Backend failures propagate unchanged.
func (u *applePayUseCase) CreateToken(
	ctx context.Context,
	credential domain.WalletCredential,
	testStatus string,
) (*domain.ApplePayToken, error) {
	if err := credential.Validate(); err != nil {
		return nil, err
	}

	body := dto.CreateApplePayTokenRequest{
		PaymentData:   base64.StdEncoding.EncodeToString(credential.PaymentData),
		TransactionID: credential.TransactionID,
	}
	if fingerprint := u.collectFingerprint(ctx); len(fingerprint) > 0 {
		body.DeviceFingerprint = base64.StdEncoding.EncodeToString(fingerprint)
	}

	headers := map[string]string{
		gateway.HeaderProductID:      u.productID,
		gateway.HeaderIdempotencyKey: uuid.Must(uuid.NewV7()).String(),
	}
	if testStatus != "" {
		headers[gateway.HeaderTestStatus] = testStatus
	}

	resp, err := u.gw.Execute(ctx, gateway.Request{
		Method:  http.MethodPost,
		Path:    applePayTokenizePath,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return nil, err
	}

	var wire dto.ApplePayTokenResponse
	if err := gateway.DecodeJSON(resp, &wire); err != nil {
		return nil, err
	}

	return &domain.ApplePayToken{ID: wire.ID, Bin: wire.Bin}, nil
}

// collectFingerprint asks the collaborator for device data, best-effort.
func (u *applePayUseCase) collectFingerprint(ctx context.Context) []byte {
	if u.collector == nil {
		return nil
	}
	fingerprint, err := u.collector.Collect(ctx)
	if err != nil {
		u.logger.DebugContext(ctx, "device fingerprint unavailable", slog.String("error", err.Error()))
		return nil
	}
	return fingerprint
}
