package kernel

import "time"

// Event carries the metadata every domain event shares. Concrete events embed it
// and add their own payload fields; the embedded fields flatten into the JSON payload.
type Event struct {
	ID          UUID      `json:"eventId"`
	Name        string    `json:"eventName"`
	AggregateID UUID      `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewEvent stamps a fresh event id and the current UTC time.
func NewEvent(name string, aggregateID UUID) Event {
	return Event{
		ID:          NewUUID(),
		Name:        name,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
	}
}

// Meta returns the shared metadata. It makes every type embedding Event a DomainEvent.
func (e Event) Meta() Event {
	return e
}

// DomainEvent is implemented by all events recorded by aggregates.
type DomainEvent interface {
	Meta() Event
}

// EventRecorder collects the events raised by an aggregate until the unit of work
// persists them. Aggregates embed it by value.
type EventRecorder struct {
	events []DomainEvent
}

// RecordEvent appends an event in the order it happened.
func (r *EventRecorder) RecordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the pending events.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

// ClearDomainEvents drops the pending events once they are stored.
func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
