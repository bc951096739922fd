// Package domain defines the 3-D Secure authentication domain: the SDK
// authentication parameters forwarded to the backend, the classified
// authentication outcome, the transaction handle contract, and the challenge
// receiver surface consumed by the presentation layer.
package domain

import (
	validation "github.com/jellydator/validation"

	sdkvalidation "github.com/zydeico/sdk-go/internal/validation"
)

// AuthRequestParameters are supplied by the external 3DS SDK component.
// The orchestrator only forwards these fields; it never derives them.
type AuthRequestParameters struct {
	// SDKAppID identifies the 3DS SDK application instance.
	SDKAppID string
	// DeviceData is the device fingerprint payload collected by the 3DS SDK.
	DeviceData string
	// SDKEphemeralPublicKey is the SDK's ephemeral public key for the challenge.
	SDKEphemeralPublicKey string
	// SDKReferenceNumber is the certified 3DS SDK reference number.
	SDKReferenceNumber string
	// SDKTransactionID identifies the SDK-side transaction.
	SDKTransactionID string
}

// Validate checks all parameters are present before the begin call.
func (p *AuthRequestParameters) Validate() error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.SDKAppID, validation.Required),
		validation.Field(&p.DeviceData, validation.Required),
		validation.Field(&p.SDKEphemeralPublicKey, validation.Required),
		validation.Field(&p.SDKReferenceNumber, validation.Required),
		validation.Field(&p.SDKTransactionID, validation.Required),
	)
	return sdkvalidation.WrapValidationError(err)
}
