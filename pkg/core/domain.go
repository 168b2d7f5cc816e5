package core

import "fmt"

// Default values for new records.
const (
	StatusAccepted = "Accepted"
	DateLayout     = "2006-01-02"
)

// Record is an Architecture Decision Record as seen by the domain.
// The markdown body lives in the repository; Record carries what is parsed from it.
type Record struct {
	ID     int
	Title  string
	Status string
	Date   string
	File   string
}

// EventType represents the type of change in the records directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a record file.
type Event struct {
	Type      EventType
	ID        int
	File      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %04d %s", e.Type, e.ID, e.File)
}
