package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/adr/pkg/core"
)

// Repository implements core.Repository on a directory of markdown records.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string // records directory, e.g. "doc/adr"
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Initialize creates the records directory unless MustExist or ReadOnly is set.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("records path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("records path is not a directory: %s", r.Path)
		}
		return nil
	}

	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return fmt.Errorf("failed to create records directory: %w", err)
	}
	return nil
}

// files maps record IDs to file names. When two files share an ID the
// lexically first one wins.
func (r *Repository) files() (map[int]string, error) {
	matches, err := doublestar.Glob(os.DirFS(r.Path), RecordGlob)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return map[int]string{}, nil
		}
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	sort.Strings(matches)

	out := make(map[int]string, len(matches))
	for _, name := range matches {
		id, ok := ParseFileName(name)
		if !ok {
			continue
		}
		if _, dup := out[id]; dup {
			r.config.Logger.Warn("duplicate record id", "id", id, "file", name)
			continue
		}
		out[id] = name
	}
	return out, nil
}

// FileName returns the file name of record id, or "" when it does not exist.
func (r *Repository) FileName(id int) string {
	files, err := r.files()
	if err != nil {
		r.config.Logger.Error("resolve file name", "id", id, "error", err)
		return ""
	}
	return files[id]
}

// NextID returns one more than the highest existing ID.
func (r *Repository) NextID(ctx context.Context) (int, error) {
	files, err := r.files()
	if err != nil {
		return 0, err
	}
	next := 1
	for id := range files {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}

// List returns all records ordered by ID.
func (r *Repository) List(ctx context.Context) ([]core.Record, error) {
	files, err := r.files()
	if err != nil {
		return nil, err
	}

	records := make([]core.Record, 0, len(files))
	for id, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.load(id, name)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// Get retrieves a record by its ID.
func (r *Repository) Get(ctx context.Context, id int) (core.Record, error) {
	name := r.FileName(id)
	if name == "" {
		return core.Record{}, fmt.Errorf("%w: %d", core.ErrNotFound, id)
	}
	return r.load(id, name)
}

func (r *Repository) load(id int, name string) (core.Record, error) {
	data, err := os.ReadFile(filepath.Join(r.Path, name))
	if err != nil {
		return core.Record{}, fmt.Errorf("failed to read %s: %w", name, err)
	}
	s := summarize(data)
	return core.Record{
		ID:     id,
		Title:  s.Title,
		Status: s.Status,
		Date:   s.Date,
		File:   name,
	}, nil
}

// Read returns the markdown of record id.
func (r *Repository) Read(ctx context.Context, id int) (string, error) {
	name := r.FileName(id)
	if name == "" {
		return "", fmt.Errorf("%w: %d", core.ErrNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(r.Path, name))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// Create writes a new record file named after rec.ID and rec.Title.
func (r *Repository) Create(ctx context.Context, rec core.Record, content string) (core.Record, error) {
	if r.config.ReadOnly {
		return core.Record{}, core.ErrReadOnly
	}
	if rec.ID <= 0 {
		return core.Record{}, core.ErrInvalidID
	}
	if existing := r.FileName(rec.ID); existing != "" {
		return core.Record{}, fmt.Errorf("%w: %s", core.ErrExists, existing)
	}

	rec.File = FileName(rec.ID, rec.Title)
	if err := writeFileAtomic(filepath.Join(r.Path, rec.File), []byte(content), 0644); err != nil {
		return core.Record{}, err
	}
	r.config.Logger.Debug("record written", "file", rec.File, "bytes", len(content))
	return rec, nil
}

// AppendLink inserts fragment at the end of the Status section of record id.
// Records without a section after Status get the fragment appended.
func (r *Repository) AppendLink(ctx context.Context, id int, fragment string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	name := r.FileName(id)
	if name == "" {
		return fmt.Errorf("%w: %d", core.ErrNotFound, id)
	}

	path := filepath.Join(r.Path, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	perm := iofs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := writeFileAtomic(path, insertFragment(data, fragment), perm); err != nil {
		return err
	}
	r.config.Logger.Debug("link inserted", "file", name)
	return nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
