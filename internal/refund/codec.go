package refund

import (
	"encoding/json"
	"fmt"
)

// ParseTimeline decodes a stored policy document. A null or empty document
// yields an empty timeline.
func ParseTimeline(raw []byte) (Timeline, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Timeline{}, nil
	}
	var timeline Timeline
	if err := json.Unmarshal(raw, &timeline); err != nil {
		return nil, fmt.Errorf("%w: malformed refund policy: %v", ErrInvalidInput, err)
	}
	if err := timeline.Validate(); err != nil {
		return nil, err
	}
	return timeline, nil
}

// MarshalTimeline encodes a timeline for storage.
func MarshalTimeline(timeline Timeline) ([]byte, error) {
	if timeline == nil {
		timeline = Timeline{}
	}
	return json.Marshal(timeline)
}
