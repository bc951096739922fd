package domain

import (
	validation "github.com/jellydator/validation"

	sdkvalidation "github.com/zydeico/sdk-go/internal/validation"
)

// WalletCredential is the opaque payment credential supplied by the native
// platform wallet: encrypted payment data plus a transaction identifier.
// The SDK forwards it as-is; it never validates or decrypts the payload.
type WalletCredential struct {
	// PaymentData is the wallet's encrypted payment blob.
	PaymentData []byte
	// TransactionID is the wallet transaction identifier.
	TransactionID string
}

// Validate checks the credential carries both required parts.
func (c *WalletCredential) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.PaymentData, validation.Required),
		validation.Field(&c.TransactionID, validation.Required),
	)
	return sdkvalidation.WrapValidationError(err)
}

// ApplePayToken is the opaque backend reference for a tokenized wallet
// credential. Immutable once constructed.
type ApplePayToken struct {
	// ID is the opaque token identifier.
	ID string
	// Bin is the bank identification number associated with the credential.
	Bin string
}
