package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventResultsLoaded     EventType = "ResultsLoaded"
	EventResultsLoadFailed EventType = "ResultsLoadFailed"
	EventTabsChanged       EventType = "TabsChanged"
	EventLinkCopied        EventType = "LinkCopied"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ResultsLoadedEvent is emitted once the result document has been read
type ResultsLoadedEvent struct {
	Source string
	Count  int
}

func (e ResultsLoadedEvent) Type() EventType { return EventResultsLoaded }

// ResultsLoadFailedEvent is emitted when the result document could not be read
type ResultsLoadFailedEvent struct {
	Source string
	Err    error
}

func (e ResultsLoadFailedEvent) Type() EventType { return EventResultsLoadFailed }

// TabsChangedEvent is emitted when the enabled tab set should be persisted
type TabsChangedEvent struct {
	Tabs EnabledTabs
}

func (e TabsChangedEvent) Type() EventType { return EventTabsChanged }

// LinkCopiedEvent is emitted when a result link is copied
type LinkCopiedEvent struct {
	Index int
	Title string
}

func (e LinkCopiedEvent) Type() EventType { return EventLinkCopied }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
