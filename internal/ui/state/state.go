package state

// AppState contains the UI state that is not owned by the gallery session
type AppState struct {
	// Result list
	SelectedIndex  int // currently selected image
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the result list

	// Category bar
	CategoryCursor int // highlighted category in the bar

	// Filters modal cursor
	FilterSection int
	FilterOption  int

	// Detail view
	DetailIndex int

	// Download and share
	Downloading     bool
	Sharing         bool
	PendingDownload string // request ID of the in-flight download
	Alert           string // shown as a box in the detail view until dismissed

	// Misc
	StatusMessage string
	ShowHelp      bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default
	}
}

// Busy reports whether a download or share is in flight
func (s *AppState) Busy() bool {
	return s.Downloading || s.Sharing
}

// StartTransfer marks a download or share as in flight
func (s *AppState) StartTransfer(id string, share bool) {
	s.PendingDownload = id
	s.Alert = ""
	if share {
		s.Sharing = true
	} else {
		s.Downloading = true
	}
}

// FinishTransfer clears the in-flight flags when id matches the pending request
func (s *AppState) FinishTransfer(id string) bool {
	if id != s.PendingDownload {
		return false
	}
	s.PendingDownload = ""
	s.Downloading = false
	s.Sharing = false
	return true
}

// ResetSelection moves the cursor back to the first row
func (s *AppState) ResetSelection() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}
