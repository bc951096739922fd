package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zydeico/sdk-go/internal/errors"
)

func TestAuthRequestParametersValidate(t *testing.T) {
	valid := AuthRequestParameters{
		SDKAppID:              "app-1",
		DeviceData:            "device-data",
		SDKEphemeralPublicKey: "eph-key",
		SDKReferenceNumber:    "ref-1",
		SDKTransactionID:      "sdk-txn-1",
	}

	t.Run("valid parameters", func(t *testing.T) {
		params := valid
		assert.NoError(t, params.Validate())
	})

	t.Run("missing device data", func(t *testing.T) {
		params := valid
		params.DeviceData = ""
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})

	t.Run("missing sdk transaction id", func(t *testing.T) {
		params := valid
		params.SDKTransactionID = ""
		assert.True(t, apperrors.Is(params.Validate(), apperrors.ErrInvalidInput))
	})
}

func TestResultReceiver(t *testing.T) {
	t.Run("Completed delivers exactly one result", func(t *testing.T) {
		receiver := NewResultReceiver()
		receiver.Completed("Y", "txn-1")

		result := <-receiver.Result()
		assert.Equal(t, ChallengeCompleted, result.Outcome)
		assert.Equal(t, "Y", result.TransactionStatus)
		assert.Equal(t, "txn-1", result.TransactionID)
	})

	t.Run("duplicate callbacks are dropped", func(t *testing.T) {
		receiver := NewResultReceiver()
		receiver.Cancelled()
		receiver.TimedOut()
		receiver.RuntimeError("500", "boom")

		result := <-receiver.Result()
		assert.Equal(t, ChallengeCancelled, result.Outcome)

		select {
		case extra := <-receiver.Result():
			t.Fatalf("unexpected second result: %+v", extra)
		default:
		}
	})

	t.Run("ProtocolError carries correlation fields", func(t *testing.T) {
		receiver := NewResultReceiver()
		receiver.ProtocolError("txn-9", "302", "data decryption failure", "acs detail")

		result := <-receiver.Result()
		require.Equal(t, ChallengeProtocolError, result.Outcome)
		assert.Equal(t, "txn-9", result.TransactionID)
		assert.Equal(t, "302", result.Code)
		assert.Equal(t, "data decryption failure", result.Message)
		assert.Equal(t, "acs detail", result.Detail)
	})

	t.Run("TimedOut", func(t *testing.T) {
		receiver := NewResultReceiver()
		receiver.TimedOut()
		assert.Equal(t, ChallengeTimedOut, (<-receiver.Result()).Outcome)
	})

	t.Run("RuntimeError", func(t *testing.T) {
		receiver := NewResultReceiver()
		receiver.RuntimeError("102", "sdk runtime failure")
		result := <-receiver.Result()
		assert.Equal(t, ChallengeRuntimeError, result.Outcome)
		assert.Equal(t, "102", result.Code)
	})
}
