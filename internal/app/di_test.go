package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/zydeico/sdk-go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		PublicKey:      "TEST-public-key",
		Environment:    "test",
		APIBaseURL:     "https://api.example.com",
		ProductID:      "BJEO9NFBF6RG01IIIOU0",
		GatewayTimeout: 30 * time.Second,
		LogLevel:       "info",
		StoreBackend:   "memory",
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()
	container := NewContainer(cfg, nil)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"

	container := NewContainer(cfg, nil)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "invalid"

	container := NewContainer(cfg, nil)
	if container.Logger() == nil {
		t.Fatal("expected non-nil logger")
	}
}

// TestContainerUseCases verifies that all use cases can be constructed and are singletons.
func TestContainerUseCases(t *testing.T) {
	container := NewContainer(testConfig(), nil)

	cardTokens, err := container.CardTokenUseCase()
	if err != nil {
		t.Fatalf("unexpected error creating card token use case: %v", err)
	}
	if cardTokens == nil {
		t.Fatal("expected non-nil card token use case")
	}

	applePay, err := container.ApplePayUseCase()
	if err != nil {
		t.Fatalf("unexpected error creating apple pay use case: %v", err)
	}
	if applePay == nil {
		t.Fatal("expected non-nil apple pay use case")
	}

	resolver, err := container.SiteResolver()
	if err != nil {
		t.Fatalf("unexpected error creating site resolver: %v", err)
	}
	if resolver == nil {
		t.Fatal("expected non-nil site resolver")
	}

	auth, err := container.AuthUseCase()
	if err != nil {
		t.Fatalf("unexpected error creating auth use case: %v", err)
	}
	if auth == nil {
		t.Fatal("expected non-nil auth use case")
	}

	again, err := container.CardTokenUseCase()
	if err != nil {
		t.Fatalf("unexpected error on second access: %v", err)
	}
	if again != cardTokens {
		t.Error("expected same card token use case instance on multiple calls")
	}
}

// TestContainerMetricsDisabled verifies that disabled metrics yield a nil provider.
func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig(), nil)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("expected nil metrics provider when metrics are disabled")
	}

	businessMetrics, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if businessMetrics == nil {
		t.Fatal("expected non-nil no-op metrics when metrics are disabled")
	}
}

// TestContainerMetricsEnabled verifies that enabled metrics yield a working provider.
func TestContainerMetricsEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = true
	cfg.MetricsNamespace = "paysdk"

	container := NewContainer(cfg, nil)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil metrics provider when metrics are enabled")
	}

	gw, err := container.Gateway()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw == nil {
		t.Fatal("expected non-nil gateway")
	}

	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}

// TestContainerCredentialStoreBackends verifies backend selection for the credential store.
func TestContainerCredentialStoreBackends(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		container := NewContainer(testConfig(), nil)

		store, err := container.CredentialStore()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store == nil {
			t.Fatal("expected non-nil credential store")
		}
	})

	t.Run("file", func(t *testing.T) {
		cfg := testConfig()
		cfg.StoreBackend = "file"
		cfg.StorePath = filepath.Join(t.TempDir(), "credentials.json")
		cfg.StoreKey = "test-key-material"

		container := NewContainer(cfg, nil)

		store, err := container.CredentialStore()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store == nil {
			t.Fatal("expected non-nil credential store")
		}

		if err := container.Shutdown(context.TODO()); err != nil {
			t.Errorf("unexpected error during shutdown: %v", err)
		}
	})

	t.Run("unsupported backend", func(t *testing.T) {
		cfg := testConfig()
		cfg.StoreBackend = "keychain"

		container := NewContainer(cfg, nil)

		if _, err := container.CredentialStore(); err == nil {
			t.Error("expected error for unsupported store backend")
		}

		// The error must be stable across accesses
		if _, err := container.CredentialStore(); err == nil {
			t.Error("expected error on second call to CredentialStore()")
		}
	})
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(testConfig(), nil)

	// Shutdown should not fail even if no components are initialized
	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
