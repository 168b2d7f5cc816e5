package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/adr/pkg/core"
)

func TestWatch(t *testing.T) {
	repo, path := setupRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Non-record files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(path, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(path, "0004-use-go.md"), []byte("# 4. Use Go\n"), 0644))

	select {
	case e := <-events:
		assert.Equal(t, core.EventCreate, e.Type)
		assert.Equal(t, 4, e.ID)
		assert.Equal(t, "0004-use-go.md", e.File)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for create event")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "channel should close after cancel")
}

func TestWatch_MissingDirectory(t *testing.T) {
	repo, path := setupRepo(t)
	require.NoError(t, os.RemoveAll(path))

	_, err := repo.Watch(context.Background())
	assert.Error(t, err)
}
