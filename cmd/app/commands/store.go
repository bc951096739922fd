package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zydeico/sdk-go/internal/store/usecase"
)

// RunStoreSave upserts a secret for an account in the credential store.
func RunStoreSave(
	ctx context.Context,
	store usecase.CredentialStore,
	logger *slog.Logger,
	w io.Writer,
	account string,
	secret string,
) error {
	if err := store.Save(ctx, secret, account); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	logger.Info("credential saved", slog.String("account", account))
	fmt.Fprintf(w, "Credential saved for account %s\n", account)
	return nil
}

// RunStoreRetrieve prints the secret stored for an account. An absent
// account is reported, not treated as an error.
func RunStoreRetrieve(
	ctx context.Context,
	store usecase.CredentialStore,
	logger *slog.Logger,
	w io.Writer,
	account string,
) error {
	secret, found, err := store.Retrieve(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to retrieve credential: %w", err)
	}
	if !found {
		fmt.Fprintf(w, "No credential stored for account %s\n", account)
		return nil
	}

	logger.Info("credential retrieved", slog.String("account", account))
	fmt.Fprintln(w, secret)
	return nil
}

// RunStoreDelete removes the secret stored for an account. Deleting an
// absent account succeeds.
func RunStoreDelete(
	ctx context.Context,
	store usecase.CredentialStore,
	logger *slog.Logger,
	w io.Writer,
	account string,
) error {
	if err := store.Delete(ctx, account); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	logger.Info("credential deleted", slog.String("account", account))
	fmt.Fprintf(w, "Credential deleted for account %s\n", account)
	return nil
}
