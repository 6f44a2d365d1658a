package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRejected  EventType = "SearchRejected"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchDiscarded EventType = "SearchDiscarded"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRejectedEvent is emitted when a submission is refused before any network activity
type SearchRejectedEvent struct {
	RawInput string
}

func (e SearchRejectedEvent) Type() EventType { return EventSearchRejected }

// SearchStartedEvent is emitted when a request is issued to the data source
type SearchStartedEvent struct {
	Generation uint64
	Query      string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSucceededEvent is emitted when the latest request produced a snapshot
type SearchSucceededEvent struct {
	Generation uint64
	Query      string
	Location   string
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when the latest request failed.
// Err carries the diagnostic detail that is never shown to the user.
type SearchFailedEvent struct {
	Generation uint64
	Query      string
	Kind       ErrorKind
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a result arrives for a superseded request
type SearchDiscardedEvent struct {
	Generation uint64
	Latest     uint64
	Query      string
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
