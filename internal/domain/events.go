package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLookupRequested EventType = "LookupRequested"
	EventLookupSucceeded EventType = "LookupSucceeded"
	EventLookupFailed    EventType = "LookupFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LookupRequestedEvent is emitted when the UI issues a lookup
type LookupRequestedEvent struct {
	Ticket Ticket
}

func (e LookupRequestedEvent) Type() EventType { return EventLookupRequested }

// LookupSucceededEvent is emitted when a lookup returns a result list
type LookupSucceededEvent struct {
	Ticket Ticket
	Users  []User
}

func (e LookupSucceededEvent) Type() EventType { return EventLookupSucceeded }

// LookupFailedEvent is emitted when a lookup fails for any reason
type LookupFailedEvent struct {
	Ticket Ticket
	Err    error
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }
