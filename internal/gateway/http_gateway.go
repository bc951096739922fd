package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

// apiErrorBody is the backend's structured error response shape.
type apiErrorBody struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPGateway is the default Gateway implementation over net/http.
// It authenticates every call with the merchant public key header, tags each
// request with a unique id, and optionally rate limits outbound calls.
type HTTPGateway struct {
	baseURL   string
	publicKey string
	client    *http.Client
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewHTTPGateway creates an HTTP gateway for the given backend base URL.
// A nil limiter disables client-side rate limiting.
func NewHTTPGateway(
	baseURL string,
	publicKey string,
	timeout time.Duration,
	limiter *rate.Limiter,
	logger *slog.Logger,
) *HTTPGateway {
	return &HTTPGateway{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		publicKey: publicKey,
		client:    &http.Client{Timeout: timeout},
		limiter:   limiter,
		logger:    logger,
	}
}

// Execute performs the backend call described by req.
// Connectivity failures are returned as ErrTransport, non-2xx responses as
// *errors.APIError, and a nil error always carries the response body.
func (g *HTTPGateway) Execute(ctx context.Context, req Request) (*Response, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrTransport, err.Error())
		}
	}

	httpReq, err := g.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrTransport, err.Error())
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrTransport, err.Error())
	}

	g.logger.DebugContext(ctx, "backend call",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.Int("status", httpResp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, newAPIError(httpResp.StatusCode, body)
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: body}, nil
}

// buildRequest assembles the http.Request with gateway default headers.
func (g *HTTPGateway) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
		}
		bodyReader = bytes.NewReader(encoded)
	}

	endpoint := g.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, bodyReader)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderPublicKey, g.publicKey)
	httpReq.Header.Set(HeaderRequestID, uuid.Must(uuid.NewV7()).String())
	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	return httpReq, nil
}

// newAPIError decodes a structured backend error, falling back to the raw
// body when the error payload itself is malformed.
func newAPIError(status int, body []byte) *apperrors.APIError {
	var wire apiErrorBody
	if err := json.Unmarshal(body, &wire); err == nil {
		code := wire.Code
		if code == "" {
			code = wire.Error
		}
		if code != "" || wire.Message != "" {
			return &apperrors.APIError{StatusCode: status, Code: code, Message: wire.Message}
		}
	}

	message := string(body)
	if len(message) > 256 {
		message = message[:256]
	}
	return &apperrors.APIError{StatusCode: status, Code: "", Message: message}
}
