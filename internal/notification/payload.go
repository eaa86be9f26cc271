// Package notification announces newly created sport events to registered webhook
// subscribers and, when configured, to a kafka topic. Delivery is best effort: every
// subscriber is attempted, failures are recorded, nothing is retried.
package notification

import (
	"encoding/json"
	"time"

	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
)

// Payload is the flat document each subscriber receives.
type Payload struct {
	ID          uint      `json:"id"`
	ComplexID   uint      `json:"complexId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func NewPayload(e sportevent.SportEvent) Payload {
	return Payload{
		ID:          e.ID,
		ComplexID:   e.ComplexID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
	}
}

func (p Payload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}
