package link

import (
	"strconv"
	"strings"
)

// Separator splits the fields of a link specification.
const Separator = ":"

const maxFields = 3

// Spec is a parsed link specification of the form ID[:COMMENT[:REVERSE_COMMENT]].
// The zero value is the empty (no-op) link. A Spec is immutable and safe to share.
type Spec struct {
	id             int
	hasTarget      bool
	comment        string
	reverseComment string
}

// New creates a link to the record id, which callers keep non-negative.
// reverseComment is the comment the caller places on the reverse link in the target record.
func New(id int, comment, reverseComment string) Spec {
	return Spec{
		id:             id,
		hasTarget:      true,
		comment:        comment,
		reverseComment: reverseComment,
	}
}

// Parse reads a specification such as "3:Supersedes:Superseded by".
//
// The empty string yields the no-op link with no target. Comments are kept
// verbatim; they cannot contain the separator.
func Parse(raw string) (Spec, error) {
	if raw == "" {
		return Spec{}, nil
	}

	fields := strings.Split(raw, Separator)
	if len(fields) > maxFields {
		return Spec{}, &SpecificationError{Spec: raw, Kind: KindTooManyFields}
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return Spec{}, &SpecificationError{Spec: raw, Kind: KindMalformedID}
	}

	s := Spec{id: id, hasTarget: true}
	if len(fields) >= 2 {
		s.comment = fields[1]
	}
	if len(fields) == 3 {
		s.reverseComment = fields[2]
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixed specs.
func MustParse(raw string) Spec {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// TargetID returns the linked record id. ok is false for the no-op link.
func (s Spec) TargetID() (id int, ok bool) {
	return s.id, s.hasTarget
}

// Comment returns the comment shown on the link in the current record.
func (s Spec) Comment() string {
	return s.comment
}

// ReverseComment returns the comment for the reverse link in the target record.
func (s Spec) ReverseComment() string {
	return s.reverseComment
}

// IsEmpty reports whether s is the no-op link.
func (s Spec) IsEmpty() bool {
	return !s.hasTarget
}

// Reverse returns the link the target record should carry back to source.
// It reports false when s has no target or no reverse comment.
func (s Spec) Reverse(source int) (Spec, bool) {
	if !s.hasTarget || s.reverseComment == "" {
		return Spec{}, false
	}
	return New(source, s.reverseComment, ""), true
}

// String formats s back into the ID[:COMMENT[:REVERSE]] grammar.
func (s Spec) String() string {
	if !s.hasTarget {
		return ""
	}
	out := strconv.Itoa(s.id)
	if s.comment != "" || s.reverseComment != "" {
		out += Separator + s.comment
	}
	if s.reverseComment != "" {
		out += Separator + s.reverseComment
	}
	return out
}
