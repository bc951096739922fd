package usecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/zydeico/sdk-go/internal/gateway"
	"github.com/zydeico/sdk-go/internal/tokenization/domain"
	"github.com/zydeico/sdk-go/internal/tokenization/dto"
)

const cardTokensPath = "/v1/card_tokens"

// cardTokenUseCase implements CardTokenUseCase over the network gateway.
type cardTokenUseCase struct {
	gw gateway.Gateway
}

// NewCardTokenUseCase creates the card tokenization use case.
func NewCardTokenUseCase(gw gateway.Gateway) CardTokenUseCase {
	return &cardTokenUseCase{gw: gw}
}

// CreateToken validates the card fields, performs the tokenization call, and
// maps the response to an immutable CardToken. Transport, API, and decode
// failures propagate unchanged so callers can branch on cause.
func (u *cardTokenUseCase) CreateToken(
	ctx context.Context,
	params *domain.CardParams,
) (*domain.CardToken, error) {
	// Raw card data must not outlive the attempt.
	defer params.Clear()

	if err := params.Validate(); err != nil {
		return nil, err
	}

	req := gateway.Request{
		Method: http.MethodPost,
		Path:   cardTokensPath,
		Headers: map[string]string{
			gateway.HeaderIdempotencyKey: uuid.Must(uuid.NewV7()).String(),
		},
		Body: buildCardTokenRequest(params),
	}

	resp, err := u.gw.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	var wire dto.CardTokenResponse
	if err := gateway.DecodeJSON(resp, &wire); err != nil {
		return nil, err
	}

	return &domain.CardToken{
		ID:              wire.ID,
		FirstSixDigits:  wire.FirstSixDigits,
		LastFourDigits:  wire.LastFourDigits,
		ExpirationMonth: wire.ExpirationMonth,
		ExpirationYear:  wire.ExpirationYear,
		LuhnValidation:  wire.LuhnValidation,
		LiveMode:        wire.LiveMode,
	}, nil
}

// buildCardTokenRequest translates domain params into the wire body.
func buildCardTokenRequest(params *domain.CardParams) dto.CreateCardTokenRequest {
	req := dto.CreateCardTokenRequest{
		CardNumber:      params.CardNumber,
		ExpirationMonth: params.ExpirationMonth,
		ExpirationYear:  params.ExpirationYear,
		SecurityCode:    params.SecurityCode,
	}
	if params.CardHolderName != "" || params.DocumentType != "" {
		req.Cardholder = &dto.Cardholder{Name: params.CardHolderName}
		if params.DocumentType != "" {
			req.Cardholder.Identification = &dto.Identification{
				Type:   params.DocumentType,
				Number: params.DocumentNumber,
			}
		}
	}
	return req
}
