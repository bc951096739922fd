package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHTTPGatewayExecute(t *testing.T) {
	t.Run("Success_AttachesDefaultHeaders", func(t *testing.T) {
		var gotPublicKey, gotRequestID, gotCustom string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPublicKey = r.Header.Get(HeaderPublicKey)
			gotRequestID = r.Header.Get(HeaderRequestID)
			gotCustom = r.Header.Get(HeaderProductID)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, nil, discardLogger())
		resp, err := g.Execute(context.Background(), Request{
			Method:  http.MethodGet,
			Path:    "/v1/site_id",
			Headers: map[string]string{HeaderProductID: "prod-1"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "TEST-key", gotPublicKey)
		assert.Equal(t, "prod-1", gotCustom)
		_, parseErr := uuid.Parse(gotRequestID)
		assert.NoError(t, parseErr, "request id should be a valid uuid")
	})

	t.Run("Success_EncodesBodyAndQuery", func(t *testing.T) {
		var gotBody map[string]string
		var gotQuery url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"tok_abc"}`))
		}))
		defer server.Close()

		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, nil, discardLogger())
		resp, err := g.Execute(context.Background(), Request{
			Method: http.MethodPost,
			Path:   "/v1/card_tokens",
			Query:  url.Values{"locale": []string{"pt-BR"}},
			Body:   map[string]string{"card_number": "4111111111111111"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "4111111111111111", gotBody["card_number"])
		assert.Equal(t, "pt-BR", gotQuery.Get("locale"))
	})

	t.Run("Error_TransportFailure", func(t *testing.T) {
		// Closed server produces a connection error.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, nil, discardLogger())
		_, err := g.Execute(context.Background(), Request{Method: http.MethodGet, Path: "/v1/site_id"})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrTransport))
	})

	t.Run("Error_StructuredAPIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"invalid_card_number","message":"card number is invalid"}`))
		}))
		defer server.Close()

		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, nil, discardLogger())
		_, err := g.Execute(context.Background(), Request{Method: http.MethodPost, Path: "/v1/card_tokens"})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrAPI))

		var apiErr *apperrors.APIError
		require.True(t, apperrors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "invalid_card_number", apiErr.Code)
		assert.Equal(t, "card number is invalid", apiErr.Message)
	})

	t.Run("Error_NonJSONErrorBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, nil, discardLogger())
		_, err := g.Execute(context.Background(), Request{Method: http.MethodGet, Path: "/v1/site_id"})

		var apiErr *apperrors.APIError
		require.True(t, apperrors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream unavailable", apiErr.Message)
	})

	t.Run("Error_RateLimiterRespectsCancelledContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Zero-rate limiter never admits a request.
		limiter := rate.NewLimiter(rate.Limit(0), 0)
		g := NewHTTPGateway(server.URL, "TEST-key", time.Second, limiter, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := g.Execute(ctx, Request{Method: http.MethodGet, Path: "/v1/site_id"})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrTransport))
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"id":"tok_abc"}`)}
		var out struct {
			ID string `json:"id"`
		}
		require.NoError(t, DecodeJSON(resp, &out))
		assert.Equal(t, "tok_abc", out.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := &Response{StatusCode: 200, Body: []byte(`{"id":`)}
		var out map[string]any
		err := DecodeJSON(resp, &out)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDecode))
	})
}
