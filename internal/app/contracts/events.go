package contracts

import (
	"context"

	"medicore-service/internal/pkg/dto/responses"
)

// CaseEvent is broadcast on every successful mutating operation. The case
// payload is the joined response DTO, so board subscribers receive the
// patient and staff display names without a second lookup.
type CaseEvent struct {
	Event          string                   `json:"event"`
	Case           *responses.EmergencyCase `json:"case"`
	PreviousStatus string                   `json:"previous_status,omitempty"`
	NewStatus      string                   `json:"new_status,omitempty"`
}

// EventPublisher fans mutations out to the emergency-room broadcast channel.
// Publishing is best-effort; implementations must not fail the mutating
// operation when no subscriber is connected.
type EventPublisher interface {
	Publish(ctx context.Context, event CaseEvent) error
}
