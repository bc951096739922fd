// Package app provides the dependency injection container assembling SDK
// components. The container replaces any ambient global state: it is built
// once from configuration and passed by reference to whoever needs it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/time/rate"

	"github.com/zydeico/sdk-go/internal/config"
	"github.com/zydeico/sdk-go/internal/gateway"
	"github.com/zydeico/sdk-go/internal/metrics"
	siteUsecase "github.com/zydeico/sdk-go/internal/site/usecase"
	storeDomain "github.com/zydeico/sdk-go/internal/store/domain"
	fileRepository "github.com/zydeico/sdk-go/internal/store/repository/file"
	memoryRepository "github.com/zydeico/sdk-go/internal/store/repository/memory"
	storeUsecase "github.com/zydeico/sdk-go/internal/store/usecase"
	threedsUsecase "github.com/zydeico/sdk-go/internal/threeds/usecase"
	tokenizationUsecase "github.com/zydeico/sdk-go/internal/tokenization/usecase"
)

// Container holds all SDK dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// External collaborators
	collector tokenizationUsecase.FingerprintCollector

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	gateway         gateway.Gateway
	fileRepo        *fileRepository.Repository

	// Use Cases
	cardTokenUseCase tokenizationUsecase.CardTokenUseCase
	applePayUseCase  tokenizationUsecase.ApplePayUseCase
	siteResolver     siteUsecase.SiteResolver
	authUseCase      threedsUsecase.AuthUseCase
	credentialStore  storeUsecase.CredentialStore

	// Initialization flags and mutex for thread-safety
	mu                   sync.Mutex
	loggerInit           sync.Once
	metricsProviderInit  sync.Once
	businessMetricsInit  sync.Once
	gatewayInit          sync.Once
	cardTokenUseCaseInit sync.Once
	applePayUseCaseInit  sync.Once
	siteResolverInit     sync.Once
	authUseCaseInit      sync.Once
	credentialStoreInit  sync.Once
	initErrors           map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
// collector is the optional device fingerprint collaborator; nil disables collection.
func NewContainer(cfg *config.Config, collector tokenizationUsecase.FingerprintCollector) *Container {
	return &Container{
		config:     cfg,
		collector:  collector,
		initErrors: make(map[string]error),
	}
}

// Config returns the SDK configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the SDK operation metrics recorder.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Gateway returns the network gateway instance.
func (c *Container) Gateway() (gateway.Gateway, error) {
	var err error
	c.gatewayInit.Do(func() {
		c.gateway, err = c.initGateway()
		if err != nil {
			c.initErrors["gateway"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gateway"]; exists {
		return nil, storedErr
	}
	return c.gateway, nil
}

// CardTokenUseCase returns the card tokenization use case instance.
func (c *Container) CardTokenUseCase() (tokenizationUsecase.CardTokenUseCase, error) {
	var err error
	c.cardTokenUseCaseInit.Do(func() {
		c.cardTokenUseCase, err = c.initCardTokenUseCase()
		if err != nil {
			c.initErrors["cardTokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardTokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardTokenUseCase, nil
}

// ApplePayUseCase returns the Apple Pay tokenization use case instance.
func (c *Container) ApplePayUseCase() (tokenizationUsecase.ApplePayUseCase, error) {
	var err error
	c.applePayUseCaseInit.Do(func() {
		c.applePayUseCase, err = c.initApplePayUseCase()
		if err != nil {
			c.initErrors["applePayUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applePayUseCase"]; exists {
		return nil, storedErr
	}
	return c.applePayUseCase, nil
}

// SiteResolver returns the site resolution use case instance.
func (c *Container) SiteResolver() (siteUsecase.SiteResolver, error) {
	var err error
	c.siteResolverInit.Do(func() {
		c.siteResolver, err = c.initSiteResolver()
		if err != nil {
			c.initErrors["siteResolver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["siteResolver"]; exists {
		return nil, storedErr
	}
	return c.siteResolver, nil
}

// AuthUseCase returns the 3DS authentication orchestrator instance.
func (c *Container) AuthUseCase() (threedsUsecase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// CredentialStore returns the secure credential store instance.
func (c *Container) CredentialStore() (storeUsecase.CredentialStore, error) {
	var err error
	c.credentialStoreInit.Do(func() {
		c.credentialStore, err = c.initCredentialStore()
		if err != nil {
			c.initErrors["credentialStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialStore"]; exists {
		return nil, storedErr
	}
	return c.credentialStore, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the host application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	// Flush metrics if initialized
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Close the file-backed store if initialized
	if c.fileRepo != nil {
		if err := c.fileRepo.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("credential store close: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initBusinessMetrics creates the operation metrics recorder, no-op when disabled.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initGateway creates the HTTP gateway, instrumented when metrics are enabled.
func (c *Container) initGateway() (gateway.Gateway, error) {
	var limiter *rate.Limiter
	if c.config.GatewayRateLimitEnabled {
		limiter = rate.NewLimiter(rate.Limit(c.config.GatewayRequestsPerSec), c.config.GatewayBurst)
	}

	gw := gateway.Gateway(gateway.NewHTTPGateway(
		c.config.APIBaseURL,
		c.config.PublicKey,
		c.config.GatewayTimeout,
		limiter,
		c.Logger(),
	))

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for gateway: %w", err)
	}
	if provider != nil {
		gatewayMetrics, err := metrics.NewGatewayMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create gateway metrics: %w", err)
		}
		gw = metrics.NewInstrumentedGateway(gw, gatewayMetrics)
	}

	return gw, nil
}

// initCardTokenUseCase creates the card tokenization use case with all its dependencies.
func (c *Container) initCardTokenUseCase() (tokenizationUsecase.CardTokenUseCase, error) {
	gw, err := c.Gateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway for card token use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics for card token use case: %w", err)
	}

	useCase := tokenizationUsecase.NewCardTokenUseCase(gw)
	return tokenizationUsecase.NewCardTokenUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initApplePayUseCase creates the Apple Pay tokenization use case with all its dependencies.
func (c *Container) initApplePayUseCase() (tokenizationUsecase.ApplePayUseCase, error) {
	gw, err := c.Gateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway for apple pay use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics for apple pay use case: %w", err)
	}

	useCase := tokenizationUsecase.NewApplePayUseCase(gw, c.collector, c.config.ProductID, c.Logger())
	return tokenizationUsecase.NewApplePayUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSiteResolver creates the site resolution use case with all its dependencies.
func (c *Container) initSiteResolver() (siteUsecase.SiteResolver, error) {
	gw, err := c.Gateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway for site resolver: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics for site resolver: %w", err)
	}

	return siteUsecase.NewSiteResolver(gw, c.Logger(), businessMetrics), nil
}

// initAuthUseCase creates the 3DS authentication orchestrator with all its dependencies.
func (c *Container) initAuthUseCase() (threedsUsecase.AuthUseCase, error) {
	gw, err := c.Gateway()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway for auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics for auth use case: %w", err)
	}

	useCase := threedsUsecase.NewAuthUseCase(gw, c.Logger())
	return threedsUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCredentialStore creates the credential store with the configured backend.
func (c *Container) initCredentialStore() (storeUsecase.CredentialStore, error) {
	switch c.config.StoreBackend {
	case "memory":
		repo := memoryRepository.NewRepository(storeDomain.ServiceNamespace)
		return storeUsecase.NewCredentialStore(repo), nil
	case "file":
		repo, err := fileRepository.NewRepository(c.config.StorePath, storeDomain.ServiceNamespace, c.config.StoreKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store repository: %w", err)
		}
		c.fileRepo = repo
		return storeUsecase.NewCredentialStore(repo), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", c.config.StoreBackend)
	}
}
