package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/adr/pkg/link"
	"github.com/aretw0/adr/pkg/template"
)

// Service handles the business logic for records.
type Service struct {
	repo      Repository
	tmpl      *template.Template
	logger    *slog.Logger
	versioner Versioner
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger. A nil logger discards output.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersioner commits every change through v.
func WithVersioner(v Versioner) ServiceOption {
	return func(s *Service) {
		s.versioner = v
	}
}

// WithClock overrides the clock used to date new records.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new Service. A nil template means template.Default().
func NewService(repo Repository, tmpl *template.Template, opts ...ServiceOption) *Service {
	if tmpl == nil {
		tmpl = template.Default()
	}
	s := &Service{
		repo:   repo,
		tmpl:   tmpl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRecord writes a new record titled title with the given links, and
// adds the reverse link to every target whose spec carries a reverse comment.
// All targets must exist; nothing is written otherwise.
func (s *Service) CreateRecord(ctx context.Context, title string, links []link.Spec) (Record, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Record{}, ErrEmptyTitle
	}

	targets := make(map[int]string)
	for _, l := range links {
		id, ok := l.TargetID()
		if !ok {
			continue
		}
		target, err := s.repo.Get(ctx, id)
		if err != nil {
			return Record{}, fmt.Errorf("link %s: %w", l, err)
		}
		targets[id] = target.File
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("allocate id: %w", err)
	}

	rec := Record{
		ID:     id,
		Title:  title,
		Status: StatusAccepted,
		Date:   s.now().Format(DateLayout),
	}
	content, err := s.tmpl.Render(template.Data{
		ID:     rec.ID,
		Name:   rec.Title,
		Date:   rec.Date,
		Status: rec.Status,
	}, links, s.repo.FileName)
	if err != nil {
		return Record{}, err
	}

	rec, err = s.repo.Create(ctx, rec, content)
	if err != nil {
		return Record{}, fmt.Errorf("create record %d: %w", id, err)
	}
	s.logger.Info("record created", "id", rec.ID, "file", rec.File)

	touched := []string{rec.File}
	for _, l := range links {
		target, _ := l.TargetID()
		done, err := s.appendReverse(ctx, rec.ID, l)
		if err != nil {
			return rec, err
		}
		if done {
			touched = append(touched, targets[target])
		}
	}

	if err := s.commit(ctx, fmt.Sprintf("docs(adr): record %s", rec.File), touched...); err != nil {
		return rec, err
	}
	return rec, nil
}

// Link adds spec as a forward link to record source, and the reverse link to
// the target when spec has a reverse comment. The no-op link does nothing.
func (s *Service) Link(ctx context.Context, source int, spec link.Spec) error {
	target, ok := spec.TargetID()
	if !ok {
		s.logger.Debug("empty link specification, nothing to do", "source", source)
		return nil
	}

	src, err := s.repo.Get(ctx, source)
	if err != nil {
		return fmt.Errorf("source %d: %w", source, err)
	}
	dst, err := s.repo.Get(ctx, target)
	if err != nil {
		return fmt.Errorf("target %d: %w", target, err)
	}

	fragment, err := spec.Fragment(s.tmpl.Links(), s.repo.FileName)
	if err != nil {
		return err
	}
	if err := s.repo.AppendLink(ctx, source, fragment); err != nil {
		return fmt.Errorf("link %d -> %d: %w", source, target, err)
	}
	s.logger.Info("link added", "source", source, "target", target)

	touched := []string{src.File}
	done, err := s.appendReverse(ctx, source, spec)
	if err != nil {
		return err
	}
	if done && dst.File != src.File {
		touched = append(touched, dst.File)
	}

	return s.commit(ctx, fmt.Sprintf("docs(adr): link %s to %s", src.File, dst.File), touched...)
}

// appendReverse writes the reverse of spec into its target, pointing back to source.
func (s *Service) appendReverse(ctx context.Context, source int, spec link.Spec) (bool, error) {
	rev, ok := spec.Reverse(source)
	if !ok {
		return false, nil
	}
	target, _ := spec.TargetID()

	fragment, err := rev.Fragment(s.tmpl.Links(), s.repo.FileName)
	if err != nil {
		return false, err
	}
	if err := s.repo.AppendLink(ctx, target, fragment); err != nil {
		return false, fmt.Errorf("reverse link %d -> %d: %w", target, source, err)
	}
	s.logger.Info("reverse link added", "source", target, "target", source)
	return true, nil
}

func (s *Service) commit(ctx context.Context, msg string, files ...string) error {
	if s.versioner == nil {
		return nil
	}
	if err := s.versioner.Commit(ctx, msg, files...); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("changes committed", "message", msg, "files", files)
	return nil
}

// GetRecord retrieves a record.
func (s *Service) GetRecord(ctx context.Context, id int) (Record, error) {
	if id <= 0 {
		return Record{}, ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

// ReadRecord returns the markdown of a record.
func (s *Service) ReadRecord(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", ErrInvalidID
	}
	return s.repo.Read(ctx, id)
}

// ListRecords retrieves all records.
func (s *Service) ListRecords(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Links returns the links recorded in the metadata of record id.
func (s *Service) Links(ctx context.Context, id int) ([]link.Annotation, error) {
	content, err := s.ReadRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return link.Annotations(content), nil
}

// FileName resolves the file of record id ("" when unknown).
func (s *Service) FileName(id int) string {
	return s.repo.FileName(id)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx)
}

// IsNotFound reports whether err means a record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
