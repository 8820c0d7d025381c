package signature

import (
	"testing"
	"time"

	"github.com/piresc/giving/internal/pkg/apperrors"
	"github.com/piresc/giving/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

var testPayload = []byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1700000000,"data":{"object":{"id":"pi_123","amount":5000,"currency":"usd"}}}`)

func TestVerify_Success(t *testing.T) {
	v := NewVerifier(testSecret, 5*time.Minute)

	event, err := v.Verify(testPayload, Sign(testPayload, testSecret, time.Now()))

	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, models.EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, int64(1700000000), event.Created)

	var pi models.PaymentIntentObject
	require.NoError(t, event.DecodeObject(&pi))
	assert.Equal(t, "pi_123", pi.ID)
	assert.Equal(t, int64(5000), pi.Amount)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret, 5*time.Minute)

	_, err := v.Verify(testPayload, Sign(testPayload, "whsec_other", time.Now()))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_StaleTimestamp(t *testing.T) {
	v := NewVerifier(testSecret, 5*time.Minute)

	_, err := v.Verify(testPayload, Sign(testPayload, testSecret, time.Now().Add(-10*time.Minute)))

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_TamperedPayload(t *testing.T) {
	v := NewVerifier(testSecret, 5*time.Minute)
	header := Sign(testPayload, testSecret, time.Now())

	tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","created":1700000000,"data":{"object":{"id":"pi_123","amount":9999,"currency":"usd"}}}`)
	_, err := v.Verify(tampered, header)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_MissingHeader(t *testing.T) {
	v := NewVerifier(testSecret, 0)

	_, err := v.Verify(testPayload, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSignature)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_MalformedHeader(t *testing.T) {
	v := NewVerifier(testSecret, 0)

	_, err := v.Verify(testPayload, "garbage")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}

func TestVerify_SignedButMalformedEnvelope(t *testing.T) {
	v := NewVerifier(testSecret, 0)
	payload := []byte(`{"object":"event"}`)

	_, err := v.Verify(payload, Sign(payload, testSecret, time.Now()))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEvent)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
}
