package link

import (
	"regexp"
	"strconv"
)

// Annotation is the link metadata recovered from a rendered record.
type Annotation struct {
	ID      int
	Comment string
	File    string
}

var (
	attrPattern = regexp.MustCompile(`\{\{\{link\.(comment|id|file)="([^"]*)"\}\}\}`)
	// A metadata block is a single line carrying at least the id attribute.
	blockPattern = regexp.MustCompile(`(?m)^.*\{\{\{link\.id="[^"]*"\}\}\}.*$`)
)

// Annotations returns the links described by the metadata blocks in markdown, in document order.
// Blocks whose id attribute is not a number are skipped. Attribute values are
// decoded, so a comment containing quotes comes back as written.
func Annotations(markdown string) []Annotation {
	var out []Annotation
	for _, line := range blockPattern.FindAllString(markdown, -1) {
		var a Annotation
		valid := false
		for _, m := range attrPattern.FindAllStringSubmatch(line, -1) {
			switch m[1] {
			case "id":
				id, err := strconv.Atoi(m[2])
				if err != nil {
					continue
				}
				a.ID = id
				valid = true
			case "comment":
				a.Comment = attrUnescaper.Replace(m[2])
			case "file":
				a.File = attrUnescaper.Replace(m[2])
			}
		}
		if valid {
			out = append(out, a)
		}
	}
	return out
}
