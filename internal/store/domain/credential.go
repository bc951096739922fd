// Package domain defines the secure credential store model and its error set.
// All entries live under one fixed service namespace so the store cannot leak
// into or collide with unrelated stores on the same device.
package domain

import (
	"github.com/zydeico/sdk-go/internal/errors"
)

// ServiceNamespace isolates SDK credentials from unrelated stores.
const ServiceNamespace = "com.zydeico.sdk.credentials"

// StoredCredential is one (account, secret) pair under the service namespace.
type StoredCredential struct {
	// Account is the lookup key within the service namespace.
	Account string
	// Secret is the opaque UTF-8 secret string.
	Secret string
}

// Store-specific error definitions.
var (
	// ErrUnexpectedData indicates the backing store returned a payload that
	// is not a valid UTF-8 string.
	ErrUnexpectedData = errors.New("unexpected credential data format")

	// ErrUnsupportedFormat indicates the persisted store file has a shape
	// this version cannot read.
	ErrUnsupportedFormat = errors.New("unsupported credential store format")

	// ErrInvalidParameter indicates a store call with a malformed argument,
	// such as an empty account.
	ErrInvalidParameter = errors.New("invalid store parameter")

	// ErrStoreFailed indicates a genuine failure of the backing store.
	ErrStoreFailed = errors.New("credential store operation failed")
)
