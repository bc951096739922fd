// Package dto defines the wire request and response shapes for the
// tokenization endpoints.
package dto

// Identification is the cardholder identification document.
type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Cardholder carries the non-card cardholder fields.
type Cardholder struct {
	Name           string          `json:"name,omitempty"`
	Identification *Identification `json:"identification,omitempty"`
}

// CreateCardTokenRequest is the body for POST /v1/card_tokens.
type CreateCardTokenRequest struct {
	CardNumber      string      `json:"card_number"`
	ExpirationMonth int         `json:"expiration_month"`
	ExpirationYear  int         `json:"expiration_year"`
	SecurityCode    string      `json:"security_code"`
	Cardholder      *Cardholder `json:"cardholder,omitempty"`
}

// CreateApplePayTokenRequest is the body for POST /v1/tokenize.
// PaymentData carries the wallet's encrypted blob in base64 form.
type CreateApplePayTokenRequest struct {
	PaymentData       string `json:"payment_data"`
	TransactionID     string `json:"transaction_id"`
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`
}
