package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/giving/internal/pkg/constants"
	"github.com/piresc/giving/internal/pkg/models"
)

type recordingPublisher struct {
	subject string
	msgID   string
	payload interface{}
	err     error
}

func (p *recordingPublisher) PublishJSON(subject, msgID string, v interface{}) error {
	p.subject, p.msgID, p.payload = subject, msgID, v
	return p.err
}

func TestSendAcknowledgment(t *testing.T) {
	pub := &recordingPublisher{}
	notifier := NewAcknowledgmentNotifier(pub)

	req := models.AcknowledgmentRequest{
		ContactID:     "c1",
		TransactionID: "txn-1",
		Amount:        "50.00",
		Currency:      "USD",
	}
	require.NoError(t, notifier.SendAcknowledgment(context.Background(), req))

	assert.Equal(t, constants.SubjectAcknowledgmentRequested, pub.subject)
	assert.Equal(t, "txn-1", pub.msgID)
	assert.Equal(t, req, pub.payload)
}

func TestSendAcknowledgment_PublishError(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nats: connection closed")}
	notifier := NewAcknowledgmentNotifier(pub)

	err := notifier.SendAcknowledgment(context.Background(), models.AcknowledgmentRequest{TransactionID: "txn-1"})
	assert.EqualError(t, err, "nats: connection closed")
}
