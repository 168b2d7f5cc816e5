package link

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrSpecification is matched by every *SpecificationError.
	ErrSpecification = errors.New("invalid link specification")

	// ErrMissingTemplate is returned when a fragment is rendered without a link template.
	ErrMissingTemplate = errors.New("link template is missing")
)

// ErrorKind classifies a specification failure.
type ErrorKind int

const (
	KindMalformedID ErrorKind = iota + 1
	KindTooManyFields
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformedID:
		return "malformed id"
	case KindTooManyFields:
		return "too many fields"
	default:
		return "unknown"
	}
}

// SpecificationError reports a link specification that could not be parsed.
type SpecificationError struct {
	Spec string
	Kind ErrorKind
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrSpecification, e.Spec, e.Kind)
}

func (e *SpecificationError) Unwrap() error {
	return ErrSpecification
}
