// Package gateway defines the network gateway contract the SDK depends on for
// all backend calls, plus the default HTTP implementation. Use cases never
// touch net/http directly; they build a Request and classify the outcome
// through the domain error taxonomy.
package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

// Header names attached to backend calls.
const (
	HeaderPublicKey      = "X-Public-Key"
	HeaderRequestID      = "X-Request-Id"
	HeaderIdempotencyKey = "X-Idempotency-Key"
	HeaderProductID      = "X-Product-Id"
	HeaderTestStatus     = "X-Test-Status"
)

// Request describes one backend call.
type Request struct {
	// Method is the HTTP method (e.g., http.MethodPost).
	Method string
	// Path is the endpoint path relative to the gateway base URL.
	Path string
	// Query holds optional query string parameters.
	Query url.Values
	// Headers holds additional request headers beyond the gateway defaults.
	Headers map[string]string
	// Body is JSON-encoded as the request body when non-nil.
	Body any
}

// Response is the successful result of a backend call.
type Response struct {
	// StatusCode is the HTTP status code (always 2xx for a non-error result).
	StatusCode int
	// Body is the raw response body.
	Body []byte
}

// Gateway executes backend calls. Implementations classify failures:
// connectivity problems surface as ErrTransport and non-2xx responses as
// *errors.APIError; a nil error always carries a usable Response.
type Gateway interface {
	Execute(ctx context.Context, req Request) (*Response, error)
}

// DecodeJSON unmarshals a response body into v, classifying shape mismatches
// as ErrDecode.
func DecodeJSON(resp *Response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return apperrors.Wrap(apperrors.ErrDecode, err.Error())
	}
	return nil
}
