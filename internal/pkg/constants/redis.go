package constants

// Redis key formats
const (
	// Webhook pipeline
	KeyWebhookProcessed = "webhook:processed:%s" // Format: webhook:processed:{event_id}
)

const (
	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{caller}
)
