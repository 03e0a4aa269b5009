// Package document holds the parsed form of a source file: the frontmatter
// metadata plus the raw Gemtext body.
package document

import (
	"fmt"
	"time"
)

// Kind distinguishes dated posts from undated topic pages.
type Kind int

const (
	// KindPost is a dated, immutable-once-published document.
	KindPost Kind = iota
	// KindTopic is an undated, evolving document.
	KindTopic
)

func (k Kind) String() string {
	if k == KindPost {
		return "post"
	}
	return "topic"
}

// Document represents a single parsed source file. Immutable after parsing;
// the body is carried through to the output verbatim.
type Document struct {
	Kind  Kind
	Title string
	Slug  string
	Date  time.Time // zero for topics
	Body  string
}

// LongDate renders a post date the way the templates print it,
// e.g. "March 1, 2024".
func (d *Document) LongDate() string {
	if d.Date.IsZero() {
		return ""
	}
	return d.Date.Format("January 2, 2006")
}

// ISODate renders a post date as YYYY-MM-DD.
func (d *Document) ISODate() string {
	if d.Date.IsZero() {
		return ""
	}
	return d.Date.Format("2006-01-02")
}

// MalformedFrontmatterError reports an unusable source file: a missing or
// unterminated frontmatter block, a missing required key, or a bad date.
type MalformedFrontmatterError struct {
	Path   string
	Reason string
}

func (e *MalformedFrontmatterError) Error() string {
	return fmt.Sprintf("%s: malformed frontmatter: %s", e.Path, e.Reason)
}
