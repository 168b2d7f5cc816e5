package core

import "context"

// Repository defines the contract for storing and retrieving records.
// The core only deals with rendered markdown; layout on disk is up to the adapter.
type Repository interface {
	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error

	// List returns all records ordered by ID.
	List(ctx context.Context) ([]Record, error)

	// Get retrieves a record by its ID.
	Get(ctx context.Context, id int) (Record, error)

	// FileName returns the file name of record id, or "" if there is none.
	// It satisfies link.FileNameFunc.
	FileName(id int) string

	// NextID returns the ID the next record should use.
	NextID(ctx context.Context) (int, error)

	// Create stores a new record with the rendered content and returns it with File set.
	Create(ctx context.Context, r Record, content string) (Record, error)

	// Read returns the markdown of record id.
	Read(ctx context.Context, id int) (string, error)

	// AppendLink inserts a rendered link fragment into record id.
	AppendLink(ctx context.Context, id int, fragment string) error
}

// Watchable defines an interface for repositories that can report changes.
type Watchable interface {
	// Watch emits an event for every change to a record file until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Versioner records changes in version control.
type Versioner interface {
	// Commit stages files (names as returned by Repository.FileName) and commits them.
	Commit(ctx context.Context, message string, files ...string) error
}
