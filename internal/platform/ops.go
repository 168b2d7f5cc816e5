package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/adr/pkg/core"
	"github.com/aretw0/adr/pkg/git"
)

// FirstRecordTitle is the title of the record created by Init.
const FirstRecordTitle = "Record architecture decisions"

// Init sets up a project at root: it writes .adr/config.yaml, creates the
// records directory, runs git init when versioning is enabled and the root is
// not a repository yet, and writes the first record unless records exist.
func Init(root string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.readOnly {
		return nil, core.ErrReadOnly
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}
	cfg = o.apply(cfg)

	if err := SaveConfig(root, cfg); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if cfg.Versioning {
		if !git.IsInstalled() {
			return nil, fmt.Errorf("versioning is enabled but git is not installed")
		}
		client := git.NewClient(root, o.logger)
		if !client.IsRepo(ctx) {
			if err := client.Init(ctx); err != nil {
				return nil, fmt.Errorf("failed to git init: %w", err)
			}
		}
	}

	svc, err := build(ctx, root, cfg, o, false)
	if err != nil {
		return nil, err
	}

	records, err := svc.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		if _, err := svc.CreateRecord(ctx, FirstRecordTitle, nil); err != nil {
			return nil, fmt.Errorf("create first record: %w", err)
		}
	}
	return svc, nil
}
