package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/adr/pkg/adapters/fs"
	"github.com/aretw0/adr/pkg/core"
	"github.com/aretw0/adr/pkg/git"
	"github.com/aretw0/adr/pkg/template"
)

// New builds the service for the project at root from its config file and opts.
// The records directory must already exist (see Init).
func New(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}
	cfg = o.apply(cfg)

	return build(context.Background(), root, cfg, o, true)
}

func build(ctx context.Context, root string, cfg Config, o *options, mustExist bool) (*core.Service, error) {
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:      docsPath(root, cfg),
			MustExist: mustExist,
			ReadOnly:  o.readOnly,
			Logger:    logger.With("component", "fs"),
		})
	}
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	tmpl, err := loadTemplate(root, cfg.Template)
	if err != nil {
		return nil, err
	}

	svcOpts := []core.ServiceOption{
		core.WithServiceLogger(logger),
		core.WithClock(o.now),
	}
	if cfg.Versioning && !o.readOnly {
		if !git.IsInstalled() {
			return nil, fmt.Errorf("versioning is enabled but git is not installed")
		}
		client := git.NewClient(root, logger.With("component", "git"))
		svcOpts = append(svcOpts, core.WithVersioner(client.Versioner(cfg.DocsDir)))
	}

	logger.Debug("service ready", "root", root, "docs_dir", cfg.DocsDir, "versioning", cfg.Versioning)
	return core.NewService(repo, tmpl, svcOpts...), nil
}

func docsPath(root string, cfg Config) string {
	if filepath.IsAbs(cfg.DocsDir) {
		return cfg.DocsDir
	}
	return filepath.Join(root, cfg.DocsDir)
}

// loadTemplate reads the template at path (relative to root); "" means the default.
func loadTemplate(root, path string) (*template.Template, error) {
	if path == "" {
		return template.Default(), nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	tmpl, err := template.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tmpl, nil
}
