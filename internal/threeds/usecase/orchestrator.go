// Package usecase implements the 3DS authentication orchestrator: it begins
// authentication against the backend, classifies the outcome, and manages the
// transaction handle lifecycle. The challenge itself runs in an external
// presentation component that reports through the domain receiver contract.
package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/zydeico/sdk-go/internal/gateway"
	"github.com/zydeico/sdk-go/internal/threeds/domain"
	"github.com/zydeico/sdk-go/internal/threeds/dto"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

const authenticatePath = "/v1/authenticate"

// challengeMaxTimeoutMinutes is the fixed challenge timeout ceiling sent on
// every begin call, the protocol's conventional SDK maximum.
const challengeMaxTimeoutMinutes = 5

// AuthUseCase begins 3DS authentication for a token and classifies the
// result. One call is one attempt; there is no internal retry.
type AuthUseCase interface {
	// Authenticate performs the begin call. On any begin-level failure the
	// transaction handle is closed before the error is returned. A
	// NotAuthorized result is terminal and also closes the handle; a
	// Challenge result keeps it open for the challenge cycle, after which
	// a ClosingReceiver releases it.
	Authenticate(
		ctx context.Context,
		transaction domain.Transaction,
		token string,
		params domain.AuthRequestParameters,
	) (*domain.Authenticated, error)
}

// authUseCase implements AuthUseCase over the network gateway.
type authUseCase struct {
	gw     gateway.Gateway
	logger *slog.Logger
}

// NewAuthUseCase creates the 3DS authentication orchestrator.
func NewAuthUseCase(gw gateway.Gateway, logger *slog.Logger) AuthUseCase {
	return &authUseCase{gw: gw, logger: logger}
}

// Authenticate runs one authentication attempt.
func (u *authUseCase) Authenticate(
	ctx context.Context,
	transaction domain.Transaction,
	token string,
	params domain.AuthRequestParameters,
) (*domain.Authenticated, error) {
	if token == "" {
		u.closeTransaction(ctx, transaction)
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token is required")
	}
	if err := params.Validate(); err != nil {
		u.closeTransaction(ctx, transaction)
		return nil, err
	}

	resp, err := u.gw.Execute(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   authenticatePath,
		Body: dto.AuthenticationRequest{
			Token:                 token,
			SDKAppID:              params.SDKAppID,
			DeviceData:            params.DeviceData,
			SDKEphemeralPublicKey: params.SDKEphemeralPublicKey,
			SDKReferenceNumber:    params.SDKReferenceNumber,
			SDKTransactionID:      params.SDKTransactionID,
			MaxTimeout:            challengeMaxTimeoutMinutes,
		},
	})
	if err != nil {
		u.closeTransaction(ctx, transaction)
		return nil, err
	}

	var wire dto.AuthenticationResponse
	if err := gateway.DecodeJSON(resp, &wire); err != nil {
		u.closeTransaction(ctx, transaction)
		return nil, err
	}

	status, err := classifyOutcome(wire.Outcome)
	if err != nil {
		u.closeTransaction(ctx, transaction)
		return nil, err
	}

	authenticated := &domain.Authenticated{
		Status:              status,
		ServerTransactionID: wire.ServerTransactionID,
		ACSReferenceNumber:  wire.ACSReferenceNumber,
		DSTransactionID:     wire.DSTransactionID,
		ACSTransactionID:    wire.ACSTransactionID,
		SignedContent:       wire.SignedContent,
		Transaction:         transaction,
	}

	// Without a challenge the attempt is already terminal.
	if status == domain.StatusNotAuthorized {
		u.closeTransaction(ctx, transaction)
	}

	return authenticated, nil
}

// classifyOutcome maps the raw discriminator to a status. The value is
// matched literally; an unrecognized value is a contract violation, not a
// default branch.
func classifyOutcome(outcome string) (domain.Status, error) {
	switch outcome {
	case dto.OutcomeChallenge:
		return domain.StatusChallenge, nil
	case dto.OutcomeNotAuthorized:
		return domain.StatusNotAuthorized, nil
	default:
		return "", apperrors.Wrapf(apperrors.ErrDecode, "unknown authentication outcome %q", outcome)
	}
}

// closeTransaction releases the handle, reporting close failures without
// letting them override the primary outcome.
func (u *authUseCase) closeTransaction(ctx context.Context, transaction domain.Transaction) {
	if transaction == nil {
		return
	}
	if err := transaction.Close(); err != nil {
		u.logger.WarnContext(ctx, "failed to close 3ds transaction", slog.String("error", err.Error()))
	}
}
