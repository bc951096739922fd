// Package domain defines the core domain models for payment credential
// tokenization. Raw card data only ever lives in CardParams, which is cleared
// as soon as a tokenization attempt finishes; tokens are immutable and carry
// only truncated, non-sensitive card metadata.
package domain

import (
	validation "github.com/jellydator/validation"

	sdkvalidation "github.com/zydeico/sdk-go/internal/validation"
)

// CardParams holds raw card fields for one tokenization attempt.
// Never persisted; call Clear once the attempt completes or fails.
type CardParams struct {
	// CardNumber is the full primary account number.
	CardNumber string
	// ExpirationMonth is the card expiration month (1-12).
	ExpirationMonth int
	// ExpirationYear is the four-digit card expiration year.
	ExpirationYear int
	// SecurityCode is the CVV/CVC printed on the card.
	SecurityCode string
	// CardHolderName is the name embossed on the card.
	CardHolderName string
	// DocumentType is the optional cardholder identification document type.
	DocumentType string
	// DocumentNumber is the optional cardholder identification document number.
	DocumentNumber string
}

// Validate checks the card fields before any network call.
// Failures are reported as ErrInvalidInput.
func (p *CardParams) Validate() error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.CardNumber,
			validation.Required,
			validation.Length(13, 19),
			sdkvalidation.Digits{},
			sdkvalidation.Luhn{},
		),
		validation.Field(&p.ExpirationMonth, validation.Required, validation.Min(1), validation.Max(12)),
		validation.Field(&p.ExpirationYear,
			validation.Required,
			validation.Min(2000),
			sdkvalidation.ExpirationNotPast{Month: p.ExpirationMonth, Year: p.ExpirationYear},
		),
		validation.Field(&p.SecurityCode,
			validation.Required,
			validation.Length(3, 4),
			sdkvalidation.Digits{},
		),
	)
	return sdkvalidation.WrapValidationError(err)
}

// Clear zeroes the sensitive card fields.
func (p *CardParams) Clear() {
	p.CardNumber = ""
	p.ExpirationMonth = 0
	p.ExpirationYear = 0
	p.SecurityCode = ""
	p.CardHolderName = ""
	p.DocumentType = ""
	p.DocumentNumber = ""
}

// CardToken is the opaque backend reference for a tokenized card.
// Immutable once constructed; never contains the full card number or the
// security code.
type CardToken struct {
	// ID is the opaque token identifier usable for subsequent charges.
	ID string
	// FirstSixDigits is the card BIN prefix echoed back by the backend.
	FirstSixDigits string
	// LastFourDigits is the non-sensitive card number suffix.
	LastFourDigits string
	// ExpirationMonth is the card expiration month.
	ExpirationMonth int
	// ExpirationYear is the card expiration year.
	ExpirationYear int
	// LuhnValidation reports whether the backend validated the card checksum.
	LuhnValidation bool
	// LiveMode reports whether the token was created against production.
	LiveMode bool
}
