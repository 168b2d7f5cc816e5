package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string `json:"repository_type"`
	Versioning     bool   `json:"versioning"`
	LinkTemplate   string `json:"link_template"`
	CommentBlock   bool   `json:"comment_block"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	links := s.tmpl.Links()
	return ServiceState{
		RepositoryType: repoType,
		Versioning:     s.versioner != nil,
		LinkTemplate:   links.Link,
		CommentBlock:   links.Comment != "",
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
