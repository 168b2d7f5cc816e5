package fs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RecordGlob matches candidate record files inside the records directory.
const RecordGlob = "[0-9]*-*.md"

const defaultSlug = "record"

var (
	fileNamePattern = regexp.MustCompile(`^(\d{4,})-[^/\\]+\.md$`)
	nonAlnum        = regexp.MustCompile(`[^a-z0-9]+`)
)

// FileName builds the file name of a record, e.g. "0007-use-postgresql.md".
func FileName(id int, title string) string {
	return fmt.Sprintf("%04d-%s.md", id, Slug(title))
}

// Slug turns a title into a lower-case, hyphen separated, ASCII file name stem.
func Slug(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	slug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(folded), "-"), "-")
	if slug == "" {
		return defaultSlug
	}
	return slug
}

// ParseFileName extracts the record ID from a file name produced by FileName.
func ParseFileName(name string) (int, bool) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
