package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path          string `json:"path"`
	ReadOnly      bool   `json:"read_only"`
	Records       int    `json:"records"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	count := 0
	if files, err := r.files(); err == nil {
		count = len(files)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return RepositoryState{
		Path:          r.Path,
		ReadOnly:      r.config.ReadOnly,
		Records:       count,
		WatcherActive: r.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
