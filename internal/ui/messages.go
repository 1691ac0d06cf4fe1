package ui

import (
	"ghsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// debounceFiredMsg is sent when the quiet period after a keystroke elapses
type debounceFiredMsg struct {
	query string
	gen   uint64
}

// openProfileMsg contains the result of opening a profile in the browser
type openProfileMsg struct {
	url string
	err error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
