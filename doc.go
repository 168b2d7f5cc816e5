// Package adr is the composition root for the adr tool.
//
// It wires the link and template rendering (pkg/link, pkg/template), the
// domain service (pkg/core) and the adapters (pkg/adapters/fs, pkg/git)
// behind a small set of functional options.
//
// Records are markdown files named NNNN-slug.md in a records directory
// (doc/adr by default). Links between records are written from a compact
// specification:
//
//	ID[:COMMENT[:REVERSE_COMMENT]]
//
// e.g. "3:Supersedes:Superseded by" links the new record to record 3 with the
// comment "Supersedes" and adds "Superseded by" back to record 3.
//
// Usage:
//
//	svc, err := adr.Init("./project", adr.WithLogger(logger))
//
//	spec, err := adr.ParseLink("1:Amends:Amended by")
//	rec, err := svc.CreateRecord(ctx, "Use Go", []adr.Link{spec})
package adr
