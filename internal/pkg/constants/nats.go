package constants

// NATS Subjects
const (
	// Donor communications
	SubjectAcknowledgmentRequested = "giving.acknowledgment.requested"
)
