// Package dto defines the wire shapes for the 3DS authentication endpoint.
package dto

// AuthenticationRequest is the body for POST /v1/authenticate.
type AuthenticationRequest struct {
	Token                 string `json:"token"`
	SDKAppID              string `json:"sdk_app_id"`
	DeviceData            string `json:"device_data"`
	SDKEphemeralPublicKey string `json:"sdk_ephemeral_public_key"`
	SDKReferenceNumber    string `json:"sdk_reference_number"`
	SDKTransactionID      string `json:"sdk_transaction_id"`
	// MaxTimeout is the challenge timeout ceiling in minutes.
	MaxTimeout int `json:"max_timeout"`
}
