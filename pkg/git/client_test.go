package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	unlock, err := client.Lock(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire lock: %v", err)
	}

	lockPath := filepath.Join(tmpDir, LockFile)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		t.Error("Lock file not created")
	}

	// A second acquisition must give up once the context expires.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Lock(ctx); err == nil {
		t.Error("expected contention error while lock is held")
	}

	unlock()

	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("Lock file not removed after unlock")
	}
}

func newRepo(t *testing.T) *Client {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git not installed")
	}

	client := NewClient(t.TempDir(), nil)
	ctx := context.Background()
	if err := client.Init(ctx); err != nil {
		t.Fatalf("Failed to init: %v", err)
	}
	for _, kv := range [][2]string{{"user.email", "adr@example.com"}, {"user.name", "adr"}, {"commit.gpgsign", "false"}} {
		if _, err := client.Run(ctx, "config", kv[0], kv[1]); err != nil {
			t.Fatalf("git config: %v", err)
		}
	}
	return client
}

func TestClient_Init(t *testing.T) {
	client := newRepo(t)

	if _, err := os.Stat(filepath.Join(client.WorkDir, ".git")); os.IsNotExist(err) {
		t.Error(".git directory not created")
	}
	if !client.IsRepo(context.Background()) {
		t.Error("expected IsRepo to be true")
	}
}

func TestVersioner_Commit(t *testing.T) {
	client := newRepo(t)
	ctx := context.Background()

	dir := filepath.Join("doc", "adr")
	if err := os.MkdirAll(filepath.Join(client.WorkDir, dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(client.WorkDir, dir, "0001-first.md"), []byte("# 1. First\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := client.Versioner(dir).Commit(ctx, "docs(adr): record 0001-first.md", "0001-first.md", ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	status, err := client.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if status != "" {
		t.Errorf("expected clean tree, got %q", status)
	}

	log, err := client.Run(ctx, "log", "--format=%s")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(log, "record 0001-first.md") {
		t.Errorf("unexpected log: %q", log)
	}
}
