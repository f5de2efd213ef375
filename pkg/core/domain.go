package core

import "fmt"

// EventType represents the type of change on the board.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
	EventClear  EventType = "CLEAR"
	// EventReload is emitted after the snapshot was re-read from storage.
	EventReload EventType = "RELOAD"
)

// Event represents a change on the board.
// ID is empty for board-wide events (CLEAR, RELOAD, external changes).
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
