package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/adr/pkg/adapters/lifecycle"
	"github.com/aretw0/adr/pkg/core"
)

func TestSource_Forwards(t *testing.T) {
	in := make(chan core.Event, 1)
	src := lifecycle.NewSource(in)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventCreate, ID: 2, File: "0002-x.md", Timestamp: 1700000000}

	select {
	case e := <-src.Events():
		re, ok := e.(lifecycle.RecordEvent)
		require.True(t, ok, "unexpected event type %T", e)
		assert.Equal(t, 2, re.ID)
		assert.Equal(t, time.Unix(1700000000, 0), re.At)
		assert.Equal(t, "record 0002 created (0002-x.md)", e.String())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	close(in)
	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output not closed")
	}
}

func TestSource_StopsOnCancel(t *testing.T) {
	src := lifecycle.NewSource(make(chan core.Event))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, src.Start(ctx))
	cancel()

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("output not closed after cancel")
	}
}

func TestRecordEvent_String(t *testing.T) {
	tests := []struct {
		typ  core.EventType
		want string
	}{
		{core.EventCreate, "record 0007 created (0007-a.md)"},
		{core.EventModify, "record 0007 modified (0007-a.md)"},
		{core.EventDelete, "record 0007 deleted (0007-a.md)"},
		{core.EventType("CHMOD"), "record 0007 chmod (0007-a.md)"},
	}
	for _, tc := range tests {
		t.Run(string(tc.typ), func(t *testing.T) {
			e := lifecycle.NewRecordEvent(core.Event{Type: tc.typ, ID: 7, File: "0007-a.md"})
			assert.Equal(t, tc.want, e.String())
			assert.True(t, e.At.IsZero())
		})
	}
}
