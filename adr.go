package adr

import (
	"log/slog"
	"time"

	"github.com/aretw0/adr/internal/platform"
	"github.com/aretw0/adr/pkg/core"
	"github.com/aretw0/adr/pkg/link"
)

// --- Types ---

// Record is a public alias for core.Record.
type Record = core.Record

// Link is a public alias for a parsed link specification.
type Link = link.Spec

// Config is the project configuration stored in .adr/config.yaml.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDocsDir sets the records directory, relative to the project root.
func WithDocsDir(dir string) Option {
	return platform.WithDocsDir(dir)
}

// WithTemplateFile sets the record template file, relative to the project root.
func WithTemplateFile(path string) Option {
	return platform.WithTemplateFile(path)
}

// WithVersioning enables or disables committing every change with git.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithReadOnly rejects all writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithClock overrides the clock used to date new records.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// --- Factory ---

// New opens the project at root.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// Init creates (or completes) a project at root and returns its service.
func Init(root string, opts ...Option) (*core.Service, error) {
	return platform.Init(root, opts...)
}

// FindRoot looks upwards from startDir for a project root.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// ParseLink parses a link specification "ID[:COMMENT[:REVERSE_COMMENT]]".
func ParseLink(spec string) (Link, error) {
	return link.Parse(spec)
}
