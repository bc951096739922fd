package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zydeico/sdk-go/internal/tokenization/domain"
	"github.com/zydeico/sdk-go/internal/tokenization/usecase"
)

// RunTokenizeCard tokenizes a card and prints the resulting token.
// Supports both text and JSON output formats. The card data is cleared
// from memory as soon as the backend call completes.
func RunTokenizeCard(
	ctx context.Context,
	cardTokens usecase.CardTokenUseCase,
	logger *slog.Logger,
	w io.Writer,
	params *domain.CardParams,
	format string,
) error {
	logger.Info("tokenizing card")

	token, err := cardTokens.CreateToken(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to tokenize card: %w", err)
	}

	logger.Info("card tokenized", slog.String("token_id", token.ID))

	if format == "json" {
		return writeJSON(w, token)
	}

	fmt.Fprintf(w, "Token created: %s\n", token.ID)
	fmt.Fprintf(w, "Card: %s******%s (expires %02d/%d)\n",
		token.FirstSixDigits, token.LastFourDigits, token.ExpirationMonth, token.ExpirationYear)
	return nil
}
