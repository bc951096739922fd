package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zydeico/sdk-go/internal/metrics"
	"github.com/zydeico/sdk-go/internal/site/usecase"
	storeDomain "github.com/zydeico/sdk-go/internal/store/domain"
	"github.com/zydeico/sdk-go/internal/store/repository/memory"
	storeUsecase "github.com/zydeico/sdk-go/internal/store/usecase"
	"github.com/zydeico/sdk-go/internal/testutil"
	threedsDomain "github.com/zydeico/sdk-go/internal/threeds/domain"
	threedsUsecase "github.com/zydeico/sdk-go/internal/threeds/usecase"
	"github.com/zydeico/sdk-go/internal/tokenization/domain"
	tokenizationUsecase "github.com/zydeico/sdk-go/internal/tokenization/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunTokenizeCard(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		gw := testutil.NewStubGateway()
		gw.EnqueueResponse(201, `{"id": "tok_abc", "first_six_digits": "503175", "last_four_digits": "0604", "expiration_month": 11, "expiration_year": 2030}`)

		var out bytes.Buffer
		err := RunTokenizeCard(ctx, tokenizationUsecase.NewCardTokenUseCase(gw), testLogger(), &out, &domain.CardParams{
			CardNumber:      "5031755734530604",
			ExpirationMonth: 11,
			ExpirationYear:  2030,
			SecurityCode:    "123",
			CardHolderName:  "APRO",
		}, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Token created: tok_abc")
		require.Contains(t, out.String(), "503175******0604")
	})

	t.Run("json-output", func(t *testing.T) {
		gw := testutil.NewStubGateway()
		gw.EnqueueResponse(201, `{"id": "tok_abc"}`)

		var out bytes.Buffer
		err := RunTokenizeCard(ctx, tokenizationUsecase.NewCardTokenUseCase(gw), testLogger(), &out, &domain.CardParams{
			CardNumber:      "5031755734530604",
			ExpirationMonth: 11,
			ExpirationYear:  2030,
			SecurityCode:    "123",
			CardHolderName:  "APRO",
		}, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"id": "tok_abc"`)
	})

	t.Run("invalid-card", func(t *testing.T) {
		gw := testutil.NewStubGateway()

		var out bytes.Buffer
		err := RunTokenizeCard(ctx, tokenizationUsecase.NewCardTokenUseCase(gw), testLogger(), &out, &domain.CardParams{
			CardNumber: "not-a-card",
		}, "text")

		require.Error(t, err)
		require.Zero(t, gw.Calls())
	})
}

func TestRunResolveSite(t *testing.T) {
	ctx := context.Background()

	t.Run("resolved-from-backend", func(t *testing.T) {
		gw := testutil.NewStubGateway()
		gw.EnqueueResponse(200, `{"site_id": "MLB"}`)
		resolver := usecase.NewSiteResolver(gw, testLogger(), metrics.NewNoOpBusinessMetrics())

		var out bytes.Buffer
		err := RunResolveSite(ctx, resolver, testLogger(), &out, "TEST-key", "BRA", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Site ID for BRA: MLB")
	})

	t.Run("missing-country", func(t *testing.T) {
		resolver := usecase.NewSiteResolver(testutil.NewStubGateway(), testLogger(), metrics.NewNoOpBusinessMetrics())

		err := RunResolveSite(ctx, resolver, testLogger(), &bytes.Buffer{}, "TEST-key", "", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "country is required")
	})
}

func TestRunAuthenticate(t *testing.T) {
	ctx := context.Background()

	gw := testutil.NewStubGateway()
	gw.EnqueueResponse(200, `{"outcome": "CHALLENGE", "server_transaction_id": "srv-1"}`)
	auth := threedsUsecase.NewAuthUseCase(gw, testLogger())

	var out bytes.Buffer
	err := RunAuthenticate(ctx, auth, testLogger(), &out, "tok_abc", threedsDomain.AuthRequestParameters{
		SDKAppID:              "app-1",
		DeviceData:            "device-data",
		SDKEphemeralPublicKey: "ephemeral-key",
		SDKReferenceNumber:    "ref-1",
		SDKTransactionID:      "sdk-txn-1",
	}, "text")

	require.NoError(t, err)
	require.Contains(t, out.String(), "Status: CHALLENGE")
	require.Contains(t, out.String(), "challenge is required")
}

func TestRunStoreCommands(t *testing.T) {
	ctx := context.Background()
	store := storeUsecase.NewCredentialStore(memory.NewRepository(storeDomain.ServiceNamespace))

	var out bytes.Buffer
	require.NoError(t, RunStoreSave(ctx, store, testLogger(), &out, "account-1", "secret-value"))
	require.Contains(t, out.String(), "Credential saved for account account-1")

	out.Reset()
	require.NoError(t, RunStoreRetrieve(ctx, store, testLogger(), &out, "account-1"))
	require.Contains(t, out.String(), "secret-value")

	out.Reset()
	require.NoError(t, RunStoreDelete(ctx, store, testLogger(), &out, "account-1"))
	require.Contains(t, out.String(), "Credential deleted for account account-1")

	out.Reset()
	require.NoError(t, RunStoreRetrieve(ctx, store, testLogger(), &out, "account-1"))
	require.Contains(t, out.String(), "No credential stored for account account-1")
}
