// Package sdk is the public entry point of the payments SDK. A Client wraps
// the internal use cases behind a small facade: card and wallet tokenization,
// site resolution, 3DS authentication, and the secure credential store. One
// Client is intended to live for the whole host application lifetime.
package sdk

import (
	"context"
	"sync"

	"github.com/zydeico/sdk-go/internal/app"
	"github.com/zydeico/sdk-go/internal/config"
	siteDomain "github.com/zydeico/sdk-go/internal/site/domain"
	storeUsecase "github.com/zydeico/sdk-go/internal/store/usecase"
	threedsDomain "github.com/zydeico/sdk-go/internal/threeds/domain"
	threedsUsecase "github.com/zydeico/sdk-go/internal/threeds/usecase"
	tokenizationDomain "github.com/zydeico/sdk-go/internal/tokenization/domain"
	tokenizationUsecase "github.com/zydeico/sdk-go/internal/tokenization/usecase"
)

// Re-exported domain types so callers never import internal packages.
type (
	// CardParams carries the card data to tokenize. The SDK clears it
	// after every tokenization attempt.
	CardParams = tokenizationDomain.CardParams
	// CardToken is the opaque token produced for a card.
	CardToken = tokenizationDomain.CardToken
	// WalletCredential is an Apple Pay payment credential.
	WalletCredential = tokenizationDomain.WalletCredential
	// ApplePayToken is the opaque token produced for a wallet credential.
	ApplePayToken = tokenizationDomain.ApplePayToken
	// AuthRequestParameters carries the device authentication parameters
	// produced by the 3DS SDK on the device.
	AuthRequestParameters = threedsDomain.AuthRequestParameters
	// Authenticated is the outcome of a 3DS authentication attempt.
	Authenticated = threedsDomain.Authenticated
	// Transaction is the 3DS transaction handle owned by the caller until
	// the SDK takes over its release.
	Transaction = threedsDomain.Transaction
	// ChallengeReceiver observes the terminal outcome of a challenge.
	ChallengeReceiver = threedsDomain.ChallengeReceiver
	// ChallengeResult is the terminal outcome delivered to a receiver.
	ChallengeResult = threedsDomain.ChallengeResult
	// FingerprintCollector supplies the optional device fingerprint
	// attached to wallet tokenization requests.
	FingerprintCollector = tokenizationUsecase.FingerprintCollector
	// CredentialStore persists secrets per account.
	CredentialStore = storeUsecase.CredentialStore
)

// Config is the SDK configuration surface.
type Config = config.Config

// LoadConfig reads the configuration from environment variables and an
// optional .env file.
func LoadConfig() *Config {
	return config.Load()
}

// Client is the SDK facade. It is safe for concurrent use.
type Client struct {
	container *app.Container

	// Resolved site id cache, one entry per country for the configured
	// public key. Resolution is expensive (up to four network calls), so
	// the first answer per country is reused for the client's lifetime.
	siteMu  sync.Mutex
	siteIDs map[string]string
}

// New creates a Client from configuration. collector may be nil, in which
// case wallet tokenization omits the device fingerprint.
func New(cfg *Config, collector FingerprintCollector) *Client {
	return &Client{
		container: app.NewContainer(cfg, collector),
		siteIDs:   make(map[string]string),
	}
}

// CreateCardToken tokenizes a card. params is cleared before this returns,
// on success and on failure alike.
func (c *Client) CreateCardToken(ctx context.Context, params *CardParams) (*CardToken, error) {
	useCase, err := c.container.CardTokenUseCase()
	if err != nil {
		params.Clear()
		return nil, err
	}
	return useCase.CreateToken(ctx, params)
}

// CreateApplePayToken tokenizes an Apple Pay payment credential. testStatus
// marks non-production flows and is omitted from the request when empty.
func (c *Client) CreateApplePayToken(ctx context.Context, credential WalletCredential, testStatus string) (*ApplePayToken, error) {
	useCase, err := c.container.ApplePayUseCase()
	if err != nil {
		return nil, err
	}
	return useCase.CreateToken(ctx, credential, testStatus)
}

// ResolveSiteID returns the site id for the configured public key and the
// given country. It never fails: backend resolution is retried a bounded
// number of times and then falls back to a static country table. The first
// resolution per country is cached for the lifetime of the Client.
func (c *Client) ResolveSiteID(ctx context.Context, country string) string {
	c.siteMu.Lock()
	if siteID, ok := c.siteIDs[country]; ok {
		c.siteMu.Unlock()
		return siteID
	}
	c.siteMu.Unlock()

	resolver, err := c.container.SiteResolver()
	if err != nil {
		return siteDomain.SiteForCountry(country)
	}
	siteID := resolver.ResolveSiteID(ctx, c.container.Config().PublicKey, country)

	c.siteMu.Lock()
	c.siteIDs[country] = siteID
	c.siteMu.Unlock()
	return siteID
}

// Authenticate begins 3DS authentication for a previously created token.
// The transaction handle is closed by the SDK on every terminal path; on a
// challenge outcome it stays open and must be driven to completion via
// NewChallengeReceiver.
func (c *Client) Authenticate(
	ctx context.Context,
	transaction Transaction,
	token string,
	params AuthRequestParameters,
) (*Authenticated, error) {
	useCase, err := c.container.AuthUseCase()
	if err != nil {
		if transaction != nil {
			_ = transaction.Close()
		}
		return nil, err
	}
	return useCase.Authenticate(ctx, transaction, token, params)
}

// NewChallengeReceiver wraps the caller's receiver so the transaction handle
// is released exactly once when the challenge reaches a terminal outcome.
// Pass the returned receiver to the challenge presentation component.
func (c *Client) NewChallengeReceiver(transaction Transaction, next ChallengeReceiver) ChallengeReceiver {
	return threedsUsecase.NewClosingReceiver(transaction, next, c.container.Logger())
}

// NewResultReceiver returns a receiver that delivers the terminal challenge
// outcome on a channel, for callers that prefer select over callbacks.
func NewResultReceiver() *threedsDomain.ResultReceiver {
	return threedsDomain.NewResultReceiver()
}

// Store returns the secure credential store.
func (c *Client) Store() (CredentialStore, error) {
	return c.container.CredentialStore()
}

// Shutdown flushes metrics and releases store resources. Call it once when
// the host application terminates.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.container.Shutdown(ctx)
}
