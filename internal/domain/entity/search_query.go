package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchQuery records a listing search for analytics.
type SearchQuery struct {
	ID          uuid.UUID      `json:"id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	Query       string         `json:"query"`
	Filters     map[string]any `json:"filters,omitempty"`
	ResultCount int            `json:"result_count"`
	CreatedAt   time.Time      `json:"created_at"`
}

// PopularSearch aggregates identical normalised queries.
type PopularSearch struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
