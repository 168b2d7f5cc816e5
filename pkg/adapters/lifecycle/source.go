// Package lifecycle exposes record events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/adr/pkg/core"
)

// RecordEvent is a record change delivered to lifecycle consumers.
type RecordEvent struct {
	Type core.EventType
	ID   int
	File string
	At   time.Time
}

// String reads as "record 0002 created (0002-use-go.md)".
func (e RecordEvent) String() string {
	return fmt.Sprintf("record %04d %s (%s)", e.ID, verb(e.Type), e.File)
}

func verb(t core.EventType) string {
	switch t {
	case core.EventCreate:
		return "created"
	case core.EventModify:
		return "modified"
	case core.EventDelete:
		return "deleted"
	default:
		return strings.ToLower(string(t))
	}
}

// NewRecordEvent converts a repository event. A zero timestamp leaves At unset.
func NewRecordEvent(e core.Event) RecordEvent {
	re := RecordEvent{Type: e.Type, ID: e.ID, File: e.File}
	if e.Timestamp != 0 {
		re.At = time.Unix(e.Timestamp, 0)
	}
	return re
}

type recordSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits a RecordEvent per record change.
// The output channel is closed when events is closed or the context passed to Start ends.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &recordSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *recordSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *recordSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- NewRecordEvent(e):
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
