package link

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder tokens recognised in link and comment templates.
const (
	TokenComment  = "{{{link.comment}}}"
	TokenID       = "{{{link.id}}}"
	TokenFile     = "{{{link.file}}}"
	TokenTemplate = "{{template.comment}}"
)

// FileNameFunc resolves the file name of the record with the given id.
type FileNameFunc func(id int) string

// Templates holds the link fragment template and the optional metadata comment template.
// An empty string means the template is absent.
type Templates struct {
	Link    string
	Comment string
}

// Fragment renders s into markdown using t.
//
// The link template is expanded with the capitalised comment, the id and the
// file name. When t.Comment is set, a metadata block follows: the comment
// template wrapped in newlines, with {{template.comment}} replaced by the raw
// link template and every link token replaced by its attribute form, e.g.
// {{{link.id="3"}}}. Substitution is a single literal pass, so replaced
// values are never expanded again.
//
// The no-op link renders to the empty string.
func (s Spec) Fragment(t Templates, fileName FileNameFunc) (string, error) {
	if t.Link == "" {
		return "", ErrMissingTemplate
	}
	if !s.hasTarget {
		return "", nil
	}

	comment := Capitalize(s.comment)
	id := strconv.Itoa(s.id)
	file := ""
	if fileName != nil {
		file = fileName(s.id)
	}

	fragment := strings.NewReplacer(
		TokenComment, comment,
		TokenID, id,
		TokenFile, file,
	).Replace(t.Link)

	metadata := ""
	if t.Comment != "" {
		// Blank lines around the block keep markdown renderers from showing it.
		metadata = strings.NewReplacer(
			TokenTemplate, t.Link,
			TokenComment, attribute(TokenComment, comment),
			TokenID, attribute(TokenID, id),
			TokenFile, attribute(TokenFile, file),
		).Replace("\n" + t.Comment + "\n")
	}

	return fragment + "\n" + metadata, nil
}

var (
	attrEscaper   = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")
	attrUnescaper = strings.NewReplacer("&amp;", `&`, "&quot;", `"`)
)

// attribute turns {{{link.x}}} into {{{link.x="value"}}}.
// Quotes and ampersands in value are written as HTML entities.
func attribute(token, value string) string {
	return strings.TrimSuffix(token, "}}}") + `="` + attrEscaper.Replace(value) + `"}}}`
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
