package model

import (
	"time"

	"github.com/google/uuid"

	"caladd/internal/resolve"
)

// Event is a single non-recurring calendar entry ready to be published.
type Event struct {
	// UID is the iCalendar UID; publishers that assign their own IDs
	// may ignore it.
	UID   string
	Title string

	Range resolve.Range

	// Created is stamped into DTSTAMP/CREATED by file-based stores.
	Created time.Time
}

// NewEvent builds an Event with a fresh UID.
func NewEvent(title string, r resolve.Range) Event {
	return Event{
		UID:     uuid.NewString(),
		Title:   title,
		Range:   r,
		Created: time.Now().UTC(),
	}
}
