package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a buyer/seller chat message. Clients write messages straight to
// the database; the worker only observes inserts through realtime.
type Message struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"sender_id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ListingID   *uuid.UUID `json:"listing_id,omitempty"`
	Body        string     `json:"body"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
