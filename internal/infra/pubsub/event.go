package pubsub

import (
	"encoding/json"

	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys, usable in subscription filters.
const (
	AttrEventType = "event_type"
	AttrSubjectID = "subject_id"
	AttrRequestID = "request_id"
)

// encodeEvent serializes the event and builds its message attributes.
func encodeEvent(event *service.MarketplaceEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventType: string(event.Type),
	}
	if event.SubjectID != "" {
		attributes[AttrSubjectID] = event.SubjectID
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
