package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested   EventType = "SearchRequested"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventSearchFailed      EventType = "SearchFailed"
	EventDownloadRequested EventType = "DownloadRequested"
	EventDownloadCompleted EventType = "DownloadCompleted"
	EventDownloadFailed    EventType = "DownloadFailed"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a page of results is requested
type SearchRequestedEvent struct {
	Seq    uint64
	Mode   ResultMode
	Params SearchParams
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when the endpoint answered successfully
type SearchCompletedEvent struct {
	Seq       uint64
	Mode      ResultMode
	Params    SearchParams
	Count     int
	TotalHits int
	Applied   bool // false when the response was stale and discarded
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a search could not be completed
type SearchFailedEvent struct {
	Seq     uint64
	Params  SearchParams
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// DownloadRequestedEvent asks the download service to fetch an image
type DownloadRequestedEvent struct {
	ID    string // correlates the completion event
	Image Image
	URL   string
	Share bool // hand the file to the share mechanism once downloaded
}

func (e DownloadRequestedEvent) Type() EventType { return EventDownloadRequested }

// DownloadCompletedEvent is emitted when an image was saved locally
type DownloadCompletedEvent struct {
	ID     string
	Path   string
	Shared bool
}

func (e DownloadCompletedEvent) Type() EventType { return EventDownloadCompleted }

// DownloadFailedEvent is emitted when a download or share failed
type DownloadFailedEvent struct {
	ID    string
	URL   string
	Share bool
	Err   error
}

func (e DownloadFailedEvent) Type() EventType { return EventDownloadFailed }

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

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
