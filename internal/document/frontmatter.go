package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// The frontmatter block is TOML delimited by "---" lines, as in:
//
//	---
//	title = "First Post"
//	date = "2024-03-01"
//	slug = "first-post"
//	---
const delimiter = "---"

// slugPattern keeps slugs usable as bare file names in both output trees.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

type matter struct {
	Title string `toml:"title"`
	Date  string `toml:"date"`
	Slug  string `toml:"slug"`
}

// Parse turns raw source file text into a Document. The opening "---" must be
// the very first line; everything after the closing "---" line becomes the
// body, byte for byte. A date key marks the document as a post, its absence
// as a topic.
func Parse(path string, data []byte) (*Document, error) {
	header, body, err := split(string(data))
	if err != nil {
		return nil, &MalformedFrontmatterError{Path: path, Reason: err.Error()}
	}

	var m matter
	if err := toml.Unmarshal([]byte(header), &m); err != nil {
		return nil, &MalformedFrontmatterError{Path: path, Reason: err.Error()}
	}

	if m.Title == "" {
		return nil, &MalformedFrontmatterError{Path: path, Reason: "missing required key: title"}
	}
	if m.Slug == "" {
		return nil, &MalformedFrontmatterError{Path: path, Reason: "missing required key: slug"}
	}
	if !slugPattern.MatchString(m.Slug) {
		return nil, &MalformedFrontmatterError{
			Path:   path,
			Reason: fmt.Sprintf("slug %q is not filesystem-safe", m.Slug),
		}
	}

	doc := &Document{
		Kind:  KindTopic,
		Title: m.Title,
		Slug:  m.Slug,
		Body:  body,
	}
	if m.Date != "" {
		date, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			return nil, &MalformedFrontmatterError{
				Path:   path,
				Reason: fmt.Sprintf("date %q is not in YYYY-MM-DD format", m.Date),
			}
		}
		doc.Kind = KindPost
		doc.Date = date
	}
	return doc, nil
}

// split separates the frontmatter header from the body. The opening delimiter
// has to be the whole first line, blank lines before it are not tolerated,
// and the header runs until the next delimiter line.
func split(src string) (header, body string, err error) {
	first, rest, found := strings.Cut(src, "\n")
	if !found || strings.TrimRight(first, "\r") != delimiter {
		return "", "", fmt.Errorf("opening %s delimiter must be the first line", delimiter)
	}

	for len(rest) > 0 {
		line, remainder, _ := strings.Cut(rest, "\n")
		if strings.TrimRight(line, "\r") == delimiter {
			return header, remainder, nil
		}
		header += line + "\n"
		rest = remainder
	}
	return "", "", fmt.Errorf("missing closing %s delimiter", delimiter)
}
