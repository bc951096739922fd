package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})

	t.Run("non-nil error", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestDigits(t *testing.T) {
	rule := Digits{}

	t.Run("valid digit string", func(t *testing.T) {
		assert.NoError(t, rule.Validate("4111111111111111"))
	})

	t.Run("rejects letters", func(t *testing.T) {
		assert.Error(t, rule.Validate("4111a11111111111"))
	})

	t.Run("rejects spaces", func(t *testing.T) {
		assert.Error(t, rule.Validate("4111 1111 1111 1111"))
	})

	t.Run("rejects non-string", func(t *testing.T) {
		assert.Error(t, rule.Validate(4111))
	})

	t.Run("empty string passes, length is a separate rule", func(t *testing.T) {
		assert.NoError(t, rule.Validate(""))
	})
}

func TestLuhn(t *testing.T) {
	rule := Luhn{}

	t.Run("valid visa test number", func(t *testing.T) {
		assert.NoError(t, rule.Validate("4111111111111111"))
	})

	t.Run("valid mastercard test number", func(t *testing.T) {
		assert.NoError(t, rule.Validate("5031433215406351"))
	})

	t.Run("rejects bad checksum", func(t *testing.T) {
		assert.Error(t, rule.Validate("4111111111111112"))
	})

	t.Run("rejects empty string", func(t *testing.T) {
		assert.Error(t, rule.Validate(""))
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		assert.Error(t, rule.Validate("4111-1111-1111-1111"))
	})
}

func TestExpirationNotPast(t *testing.T) {
	now := func() time.Time {
		return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	t.Run("future year", func(t *testing.T) {
		rule := ExpirationNotPast{Month: 1, Year: 2032, Now: now}
		assert.NoError(t, rule.Validate(nil))
	})

	t.Run("current month", func(t *testing.T) {
		rule := ExpirationNotPast{Month: 6, Year: 2026, Now: now}
		assert.NoError(t, rule.Validate(nil))
	})

	t.Run("past month in current year", func(t *testing.T) {
		rule := ExpirationNotPast{Month: 5, Year: 2026, Now: now}
		assert.Error(t, rule.Validate(nil))
	})

	t.Run("past year", func(t *testing.T) {
		rule := ExpirationNotPast{Month: 12, Year: 2025, Now: now}
		assert.Error(t, rule.Validate(nil))
	})
}
