package fs

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var titlePrefix = regexp.MustCompile(`^\d+\.\s*`)

const statusHeading = "status"

func parseBody(body []byte) gmast.Node {
	return goldmark.New().Parser().Parse(text.NewReader(body))
}

func nodeText(n gmast.Node, source []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(source))))
	}
	return strings.Join(parts, " ")
}

// lineStart returns the offset of the first byte of the line holding n.
func lineStart(n gmast.Node, source []byte) (int, bool) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return 0, false
	}
	start := lines.At(0).Start
	return bytes.LastIndexByte(source[:start], '\n') + 1, true
}

// summary holds what a record exposes in its markdown.
type summary struct {
	Title  string
	Status string
	Date   string
}

// summarize reads the title (first level 1 heading, "N. " prefix removed),
// the status (first paragraph of the Status section) and the "Date:" line.
func summarize(body []byte) summary {
	var s summary
	inStatus := false
	for n := parseBody(body).FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gmast.Heading:
			heading := nodeText(node, body)
			if node.Level == 1 && s.Title == "" {
				s.Title = titlePrefix.ReplaceAllString(heading, "")
			}
			inStatus = node.Level >= 2 && strings.EqualFold(heading, statusHeading)
		case *gmast.Paragraph:
			para := nodeText(node, body)
			if s.Date == "" {
				if date, ok := strings.CutPrefix(para, "Date:"); ok {
					s.Date = strings.TrimSpace(date)
					continue
				}
			}
			if inStatus && s.Status == "" {
				s.Status = para
			}
		}
	}
	return s
}

// insertionPoint returns where a link fragment belongs: right before the
// heading that follows the Status section. ok is false when the record has
// no such heading.
func insertionPoint(body []byte) (int, bool) {
	inStatus := false
	statusLevel := 0
	for n := parseBody(body).FirstChild(); n != nil; n = n.NextSibling() {
		h, isHeading := n.(*gmast.Heading)
		if !isHeading {
			continue
		}
		if inStatus && h.Level <= statusLevel {
			return lineStart(h, body)
		}
		if strings.EqualFold(nodeText(h, body), statusHeading) {
			inStatus = true
			statusLevel = h.Level
		}
	}
	return 0, false
}

// insertFragment places fragment into body, keeping a blank line before the next heading.
func insertFragment(body []byte, fragment string) []byte {
	at, ok := insertionPoint(body)
	if !ok {
		out := append([]byte{}, body...)
		if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n\n")) {
			if bytes.HasSuffix(out, []byte("\n")) {
				out = append(out, '\n')
			} else {
				out = append(out, '\n', '\n')
			}
		}
		return append(out, fragment...)
	}

	var b bytes.Buffer
	head := body[:at]
	b.Write(head)
	if !bytes.HasSuffix(head, []byte("\n\n")) {
		b.WriteByte('\n')
	}
	b.WriteString(fragment)
	if !strings.HasSuffix(fragment, "\n") {
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.Write(body[at:])
	return b.Bytes()
}
