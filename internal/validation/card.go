// Package validation provides card-specific validation rules for the SDK.
package validation

import (
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Digits validates that a string contains only decimal digits.
type Digits struct{}

// Validate checks if the value is a string made of digits only.
func (d Digits) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_digits", "must be a string")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return validation.NewError("validation_digits", "must contain only digits")
		}
	}
	return nil
}

// Luhn validates a card number against the Luhn checksum.
type Luhn struct{}

// Validate checks if the value is a string passing the Luhn checksum.
func (l Luhn) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_luhn", "card number must be a string")
	}
	if !luhnValid(s) {
		return validation.NewError("validation_luhn", "card number failed checksum")
	}
	return nil
}

// ExpirationNotPast validates a month/year pair against the current date.
// The zero value uses the real clock; Now can be injected for tests.
type ExpirationNotPast struct {
	Month int
	Year  int
	Now   func() time.Time
}

// Validate checks the expiration pair is not in the past. The validated value
// itself is ignored; the rule operates on the configured Month/Year pair.
func (e ExpirationNotPast) Validate(interface{}) error {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	current := now().UTC()
	if e.Year < current.Year() || (e.Year == current.Year() && e.Month < int(current.Month())) {
		return validation.NewError("validation_expiration", "card is expired")
	}
	return nil
}

// luhnValid implements the Luhn mod-10 checksum over a digit string.
func luhnValid(s string) bool {
	if len(s) == 0 {
		return false
	}
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		r := s[i]
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
