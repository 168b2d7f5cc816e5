package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/adr/pkg/core"
)

// options holds the internal configuration for the adr service.
// Zero values mean "use the config file".
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	docsDir      string
	templateFile string
	versioning   *bool
	readOnly     bool
	now          func() time.Time
}

// Option defines a functional option for configuring the service.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDocsDir sets the records directory, relative to the project root.
func WithDocsDir(dir string) Option {
	return func(o *options) {
		o.docsDir = dir
	}
}

// WithTemplateFile sets the record template, relative to the project root.
func WithTemplateFile(path string) Option {
	return func(o *options) {
		o.templateFile = path
	}
}

// WithVersioning enables or disables committing changes with git.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = &enabled
	}
}

// WithReadOnly rejects every write with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithClock overrides the clock used to date new records.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// apply merges the options over cfg.
func (o *options) apply(cfg Config) Config {
	if o.docsDir != "" {
		cfg.DocsDir = o.docsDir
	}
	if o.templateFile != "" {
		cfg.Template = o.templateFile
	}
	if o.versioning != nil {
		cfg.Versioning = *o.versioning
	}
	return cfg
}
