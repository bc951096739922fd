package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

func validCardParams() *CardParams {
	return &CardParams{
		CardNumber:      "4111111111111111",
		ExpirationMonth: 12,
		ExpirationYear:  2032,
		SecurityCode:    "123",
		CardHolderName:  "APRO",
	}
}

func TestCardParamsValidate(t *testing.T) {
	t.Run("Success_ValidCard", func(t *testing.T) {
		assert.NoError(t, validCardParams().Validate())
	})

	t.Run("Success_OptionalDocumentFields", func(t *testing.T) {
		params := validCardParams()
		params.DocumentType = "CPF"
		params.DocumentNumber = "19119119100"
		assert.NoError(t, params.Validate())
	})

	t.Run("Error_MissingCardNumber", func(t *testing.T) {
		params := validCardParams()
		params.CardNumber = ""
		err := params.Validate()
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_BadChecksum", func(t *testing.T) {
		params := validCardParams()
		params.CardNumber = "4111111111111112"
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})

	t.Run("Error_ShortCardNumber", func(t *testing.T) {
		params := validCardParams()
		params.CardNumber = "411111"
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})

	t.Run("Error_MonthOutOfRange", func(t *testing.T) {
		params := validCardParams()
		params.ExpirationMonth = 13
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})

	t.Run("Error_ExpiredYear", func(t *testing.T) {
		params := validCardParams()
		params.ExpirationYear = 2020
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})

	t.Run("Error_SecurityCodeWithLetters", func(t *testing.T) {
		params := validCardParams()
		params.SecurityCode = "12a"
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})
}

func TestCardParamsClear(t *testing.T) {
	params := validCardParams()
	params.DocumentType = "CPF"
	params.DocumentNumber = "19119119100"

	params.Clear()

	assert.Empty(t, params.CardNumber)
	assert.Zero(t, params.ExpirationMonth)
	assert.Zero(t, params.ExpirationYear)
	assert.Empty(t, params.SecurityCode)
	assert.Empty(t, params.CardHolderName)
	assert.Empty(t, params.DocumentType)
	assert.Empty(t, params.DocumentNumber)
}

func TestWalletCredentialValidate(t *testing.T) {
	t.Run("Success_ValidCredential", func(t *testing.T) {
		cred := &WalletCredential{PaymentData: []byte("encrypted"), TransactionID: "txn-1"}
		assert.NoError(t, cred.Validate())
	})

	t.Run("Error_MissingPaymentData", func(t *testing.T) {
		cred := &WalletCredential{TransactionID: "txn-1"}
		err := cred.Validate()
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_MissingTransactionID", func(t *testing.T) {
		cred := &WalletCredential{PaymentData: []byte("encrypted")}
		err := cred.Validate()
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
