package ui

import (
	"pixels/internal/eventbus"
	"pixels/internal/gallery"
	"pixels/internal/imageapi"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchResultMsg carries a finished search back to the model
type searchResultMsg struct {
	req *gallery.Request
	res imageapi.Result
}

// searchDebouncedMsg is sent once typing in the search bar settles
type searchDebouncedMsg struct {
	text string
	seq  uint64 // typing sequence the text belongs to
}

// clearStatusMsg clears the status message
type clearStatusMsg struct {
	message string // only cleared if still showing this message
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
