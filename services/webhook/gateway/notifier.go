package gateway

import (
	"context"

	"github.com/piresc/giving/internal/pkg/constants"
	"github.com/piresc/giving/internal/pkg/models"
	nrpkg "github.com/piresc/giving/internal/pkg/newrelic"
)

// Publisher is the slice of the NATS client the notifier needs
type Publisher interface {
	PublishJSON(subject, msgID string, v interface{}) error
}

// AcknowledgmentNotifier asks the mailer, over NATS, to thank a donor
type AcknowledgmentNotifier struct {
	publisher Publisher
}

func NewAcknowledgmentNotifier(publisher Publisher) *AcknowledgmentNotifier {
	return &AcknowledgmentNotifier{publisher: publisher}
}

// SendAcknowledgment publishes req keyed by transaction id so a stream can drop republishes
func (n *AcknowledgmentNotifier) SendAcknowledgment(ctx context.Context, req models.AcknowledgmentRequest) error {
	subject := constants.SubjectAcknowledgmentRequested
	return nrpkg.WithMessageProducerSegment(ctx, "NATS", subject, func() error {
		return n.publisher.PublishJSON(subject, req.TransactionID, req)
	})
}
