package entity

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEventType names an auditable security occurrence.
type SecurityEventType string

const (
	SecurityEventInvalidToken       SecurityEventType = "INVALID_TOKEN"
	SecurityEventRateLimited        SecurityEventType = "RATE_LIMITED"
	SecurityEventInvalidReleaseCode SecurityEventType = "INVALID_RELEASE_CODE"
	SecurityEventWebhookSignature   SecurityEventType = "WEBHOOK_SIGNATURE_INVALID"
	SecurityEventForbiddenAccess    SecurityEventType = "FORBIDDEN_ACCESS"
	SecurityEventKYCReviewed        SecurityEventType = "KYC_REVIEWED"
	SecurityEventPaymentAfterCancel SecurityEventType = "PAYMENT_AFTER_CANCEL"
)

// SecuritySeverity ranks events for triage.
type SecuritySeverity string

const (
	SeverityLow    SecuritySeverity = "LOW"
	SeverityMedium SecuritySeverity = "MEDIUM"
	SeverityHigh   SecuritySeverity = "HIGH"
)

// SecurityEvent is an append-only audit record.
type SecurityEvent struct {
	ID        uuid.UUID         `json:"id"`
	UserID    *uuid.UUID        `json:"user_id,omitempty"`
	Type      SecurityEventType `json:"type"`
	Severity  SecuritySeverity  `json:"severity"`
	IPAddress string            `json:"ip_address,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
	Details   map[string]any    `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
