package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Unreachable(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", nil...)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PublishJSONWithoutConnection(t *testing.T) {
	client := &Client{}

	assert.False(t, client.IsConnected())
	assert.ErrorIs(t, client.PublishJSON("giving.acknowledgment.requested", "txn-1", map[string]string{"a": "b"}), ErrNotConnected)
}
