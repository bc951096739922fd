package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zydeico/sdk-go/internal/tokenization/domain"
	"github.com/zydeico/sdk-go/internal/tokenization/usecase"
)

// RunTokenizeApplePay tokenizes an Apple Pay payment credential read from a
// file and prints the resulting token. testStatus marks non-production flows
// and is omitted when empty.
func RunTokenizeApplePay(
	ctx context.Context,
	applePay usecase.ApplePayUseCase,
	logger *slog.Logger,
	w io.Writer,
	paymentDataPath string,
	transactionID string,
	testStatus string,
	format string,
) error {
	paymentData, err := os.ReadFile(paymentDataPath)
	if err != nil {
		return fmt.Errorf("failed to read payment data file: %w", err)
	}

	logger.Info("tokenizing apple pay credential", slog.String("transaction_id", transactionID))

	token, err := applePay.CreateToken(ctx, domain.WalletCredential{
		PaymentData:   paymentData,
		TransactionID: transactionID,
	}, testStatus)
	if err != nil {
		return fmt.Errorf("failed to tokenize apple pay credential: %w", err)
	}

	logger.Info("apple pay credential tokenized", slog.String("token_id", token.ID))

	if format == "json" {
		return writeJSON(w, token)
	}

	fmt.Fprintf(w, "Token created: %s\n", token.ID)
	if token.Bin != "" {
		fmt.Fprintf(w, "BIN: %s\n", token.Bin)
	}
	return nil
}
