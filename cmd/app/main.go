// Package main provides the entry point for the SDK demo CLI.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zydeico/sdk-go/cmd/app/commands"
	"github.com/zydeico/sdk-go/internal/app"
	"github.com/zydeico/sdk-go/internal/config"
	threedsDomain "github.com/zydeico/sdk-go/internal/threeds/domain"
	tokenizationDomain "github.com/zydeico/sdk-go/internal/tokenization/domain"
)

func main() {
	cfg := config.Load()
	container := app.NewContainer(cfg, nil)
	logger := container.Logger()

	cmd := &cli.Command{
		Name:    "paysdk",
		Usage:   "Payments SDK demo CLI",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "tokenize-card",
				Usage: "Tokenize a card",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Required: true, Usage: "Card number"},
					&cli.IntFlag{Name: "month", Required: true, Usage: "Expiration month (1-12)"},
					&cli.IntFlag{Name: "year", Required: true, Usage: "Expiration year (four digits)"},
					&cli.StringFlag{Name: "cvv", Required: true, Usage: "Security code"},
					&cli.StringFlag{Name: "holder", Required: true, Usage: "Cardholder name"},
					&cli.StringFlag{Name: "doc-type", Value: "", Usage: "Cardholder document type"},
					&cli.StringFlag{Name: "doc-number", Value: "", Usage: "Cardholder document number"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: 'text' or 'json'"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cardTokens, err := container.CardTokenUseCase()
					if err != nil {
						return err
					}
					return commands.RunTokenizeCard(ctx, cardTokens, logger, os.Stdout, &tokenizationDomain.CardParams{
						CardNumber:      cmd.String("number"),
						ExpirationMonth: cmd.Int("month"),
						ExpirationYear:  cmd.Int("year"),
						SecurityCode:    cmd.String("cvv"),
						CardHolderName:  cmd.String("holder"),
						DocumentType:    cmd.String("doc-type"),
						DocumentNumber:  cmd.String("doc-number"),
					}, cmd.String("format"))
				},
			},
			{
				Name:  "tokenize-applepay",
				Usage: "Tokenize an Apple Pay payment credential",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "payment-data", Required: true, Usage: "Path to the PKPaymentToken payment data file"},
					&cli.StringFlag{Name: "transaction-id", Required: true, Usage: "Wallet transaction identifier"},
					&cli.StringFlag{Name: "test-status", Value: "", Usage: "Test status marker for non-production flows"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: 'text' or 'json'"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					applePay, err := container.ApplePayUseCase()
					if err != nil {
						return err
					}
					return commands.RunTokenizeApplePay(
						ctx,
						applePay,
						logger,
						os.Stdout,
						cmd.String("payment-data"),
						cmd.String("transaction-id"),
						cmd.String("test-status"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "resolve-site",
				Usage: "Resolve the site id for a country",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "country", Aliases: []string{"c"}, Required: true, Usage: "Three-letter country code (e.g., BRA)"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: 'text' or 'json'"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					resolver, err := container.SiteResolver()
					if err != nil {
						return err
					}
					return commands.RunResolveSite(
						ctx,
						resolver,
						logger,
						os.Stdout,
						cfg.PublicKey,
						cmd.String("country"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "authenticate",
				Usage: "Begin 3DS authentication for a token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Required: true, Usage: "Card token to authenticate"},
					&cli.StringFlag{Name: "sdk-app-id", Required: true, Usage: "3DS SDK application id"},
					&cli.StringFlag{Name: "device-data", Required: true, Usage: "Encrypted device data blob"},
					&cli.StringFlag{Name: "ephemeral-key", Required: true, Usage: "SDK ephemeral public key"},
					&cli.StringFlag{Name: "reference-number", Required: true, Usage: "SDK reference number"},
					&cli.StringFlag{Name: "transaction-id", Required: true, Usage: "SDK transaction id"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: 'text' or 'json'"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					auth, err := container.AuthUseCase()
					if err != nil {
						return err
					}
					return commands.RunAuthenticate(ctx, auth, logger, os.Stdout, cmd.String("token"), threedsDomain.AuthRequestParameters{
						SDKAppID:              cmd.String("sdk-app-id"),
						DeviceData:            cmd.String("device-data"),
						SDKEphemeralPublicKey: cmd.String("ephemeral-key"),
						SDKReferenceNumber:    cmd.String("reference-number"),
						SDKTransactionID:      cmd.String("transaction-id"),
					}, cmd.String("format"))
				},
			},
			{
				Name:  "store",
				Usage: "Manage the secure credential store",
				Commands: []*cli.Command{
					{
						Name:  "save",
						Usage: "Save a secret for an account",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "account", Aliases: []string{"a"}, Required: true, Usage: "Account identifier"},
							&cli.StringFlag{Name: "secret", Aliases: []string{"s"}, Required: true, Usage: "Secret value"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							store, err := container.CredentialStore()
							if err != nil {
								return err
							}
							return commands.RunStoreSave(ctx, store, logger, os.Stdout, cmd.String("account"), cmd.String("secret"))
						},
					},
					{
						Name:  "retrieve",
						Usage: "Retrieve the secret for an account",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "account", Aliases: []string{"a"}, Required: true, Usage: "Account identifier"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							store, err := container.CredentialStore()
							if err != nil {
								return err
							}
							return commands.RunStoreRetrieve(ctx, store, logger, os.Stdout, cmd.String("account"))
						},
					},
					{
						Name:  "delete",
						Usage: "Delete the secret for an account",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "account", Aliases: []string{"a"}, Required: true, Usage: "Account identifier"},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							store, err := container.CredentialStore()
							if err != nil {
								return err
							}
							return commands.RunStoreDelete(ctx, store, logger, os.Stdout, cmd.String("account"))
						},
					},
				},
			},
		},
	}

	err := cmd.Run(context.Background(), os.Args)
	if shutdownErr := container.Shutdown(context.Background()); shutdownErr != nil {
		logger.Error("failed to shutdown container", slog.Any("error", shutdownErr))
	}
	if err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
