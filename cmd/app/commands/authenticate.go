package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zydeico/sdk-go/internal/threeds/domain"
	"github.com/zydeico/sdk-go/internal/threeds/usecase"
)

// RunAuthenticate begins 3DS authentication for a previously created token
// and prints the classified outcome. No transaction handle exists in the CLI
// flow, so only the begin call and its classification are exercised.
func RunAuthenticate(
	ctx context.Context,
	auth usecase.AuthUseCase,
	logger *slog.Logger,
	w io.Writer,
	token string,
	params domain.AuthRequestParameters,
	format string,
) error {
	logger.Info("beginning 3ds authentication")

	authenticated, err := auth.Authenticate(ctx, nil, token, params)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	logger.Info("authentication classified", slog.String("status", string(authenticated.Status)))

	if format == "json" {
		return writeJSON(w, map[string]string{
			"status":                string(authenticated.Status),
			"server_transaction_id": authenticated.ServerTransactionID,
			"acs_reference_number":  authenticated.ACSReferenceNumber,
			"ds_transaction_id":     authenticated.DSTransactionID,
		})
	}

	fmt.Fprintf(w, "Status: %s\n", authenticated.Status)
	if authenticated.ServerTransactionID != "" {
		fmt.Fprintf(w, "Server transaction: %s\n", authenticated.ServerTransactionID)
	}
	if authenticated.Status == domain.StatusChallenge {
		fmt.Fprintln(w, "A challenge is required to complete this authentication.")
	}
	return nil
}
