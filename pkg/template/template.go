// Package template renders whole decision records.
//
// A record template is plain markdown with the record placeholders {{id}},
// {{name}}, {{date}} and {{status}}, and exactly one links block:
//
//	{{#links}}
//	{{{link.comment}}} [ADR {{{link.id}}}]({{{link.file}}})
//	<!-- {{template.comment}} {{{link.comment}}} {{{link.id}}} {{{link.file}}} -->
//	{{/links}}
//
// The first line of the block is the link fragment template, the optional
// second line the metadata comment template (see link.Templates).
package template

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/adr/pkg/link"
)

// Record placeholders and links block delimiters.
const (
	TokenID     = "{{id}}"
	TokenName   = "{{name}}"
	TokenDate   = "{{date}}"
	TokenStatus = "{{status}}"

	BlockStart = "{{#links}}"
	BlockEnd   = "{{/links}}"
)

// ErrLinkBlock is returned when a template has no usable links block.
var ErrLinkBlock = errors.New("malformed links block")

//go:embed default.md
var defaultText string

// Data holds the record values substituted into a template.
type Data struct {
	ID     int
	Name   string
	Date   string
	Status string
}

// Template is a parsed record template.
type Template struct {
	before string
	after  string
	links  link.Templates
}

// Default returns the built-in template.
func Default() *Template {
	t, err := Parse(defaultText)
	if err != nil {
		panic(fmt.Sprintf("template: embedded default is invalid: %v", err))
	}
	return t
}

// DefaultText returns the source of the built-in template.
func DefaultText() string {
	return defaultText
}

// Parse splits text into the record body and its links block.
func Parse(text string) (*Template, error) {
	lines := strings.SplitAfter(text, "\n")

	start, end := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case BlockStart:
			if start >= 0 {
				return nil, fmt.Errorf("%w: nested %s", ErrLinkBlock, BlockStart)
			}
			start = i
		case BlockEnd:
			if start < 0 {
				return nil, fmt.Errorf("%w: %s before %s", ErrLinkBlock, BlockEnd, BlockStart)
			}
			if end < 0 {
				end = i
			}
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: no %s", ErrLinkBlock, BlockStart)
	}
	if end < 0 {
		return nil, fmt.Errorf("%w: %s is not closed", ErrLinkBlock, BlockStart)
	}

	var inner []string
	for _, line := range lines[start+1 : end] {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			inner = append(inner, line)
		}
	}
	switch len(inner) {
	case 0:
		return nil, link.ErrMissingTemplate
	case 1, 2:
	default:
		return nil, fmt.Errorf("%w: expected at most 2 lines, got %d", ErrLinkBlock, len(inner))
	}

	t := &Template{
		before: strings.Join(lines[:start], ""),
		after:  strings.Join(lines[end+1:], ""),
		links:  link.Templates{Link: inner[0]},
	}
	if len(inner) == 2 {
		t.links.Comment = inner[1]
	}
	return t, nil
}

// Links returns the link templates of the links block.
func (t *Template) Links() link.Templates {
	return t.links
}

// Render produces the markdown of a record. Each link is rendered with
// Links(); links without a target are skipped. Record placeholders are not
// expanded inside link fragments.
func (t *Template) Render(d Data, links []link.Spec, fileName link.FileNameFunc) (string, error) {
	r := strings.NewReplacer(
		TokenID, strconv.Itoa(d.ID),
		TokenName, d.Name,
		TokenDate, d.Date,
		TokenStatus, d.Status,
	)

	var b strings.Builder
	b.WriteString(r.Replace(t.before))

	rendered := 0
	for _, l := range links {
		if l.IsEmpty() {
			continue
		}
		fragment, err := l.Fragment(t.links, fileName)
		if err != nil {
			return "", fmt.Errorf("render link %s: %w", l, err)
		}
		b.WriteString(fragment)
		rendered++
	}

	after := t.after
	if rendered == 0 {
		// Drop the blank line that separated the block from what follows.
		after = strings.TrimPrefix(strings.TrimPrefix(after, "\r"), "\n")
	}
	b.WriteString(r.Replace(after))
	return b.String(), nil
}
