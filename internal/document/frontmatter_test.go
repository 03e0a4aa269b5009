package document

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostRoundTrip(t *testing.T) {
	src := "---\n" +
		"title = \"First Post\"\n" +
		"date = \"2024-03-01\"\n" +
		"slug = \"first-post\"\n" +
		"---\n" +
		"# Hello\n" +
		"\n" +
		"Some body text.\n" +
		"=> gemini://example.com A link\n"

	doc, err := Parse("posts/first.gmi", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, KindPost, doc.Kind)
	assert.Equal(t, "First Post", doc.Title)
	assert.Equal(t, "first-post", doc.Slug)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), doc.Date)
	assert.Equal(t, "# Hello\n\nSome body text.\n=> gemini://example.com A link\n", doc.Body)
}

func TestParseTopicWithoutDate(t *testing.T) {
	src := "---\n" +
		"title = \"Gardening\"\n" +
		"slug = \"gardening\"\n" +
		"---\n" +
		"Topic body.\n"

	doc, err := Parse("topics/gardening.gmi", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, KindTopic, doc.Kind)
	assert.True(t, doc.Date.IsZero())
	assert.Equal(t, "Topic body.\n", doc.Body)
}

func TestParseRejectsLeadingBlankLine(t *testing.T) {
	src := "\n---\ntitle = \"x\"\nslug = \"x\"\n---\nbody\n"

	_, err := Parse("bad.gmi", []byte(src))
	var mferr *MalformedFrontmatterError
	require.True(t, errors.As(err, &mferr))
	assert.Equal(t, "bad.gmi", mferr.Path)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing opening delimiter", "title = \"x\"\n---\nbody\n"},
		{"missing closing delimiter", "---\ntitle = \"x\"\nslug = \"x\"\nbody\n"},
		{"missing title", "---\nslug = \"x\"\n---\nbody\n"},
		{"missing slug", "---\ntitle = \"x\"\n---\nbody\n"},
		{"bad date", "---\ntitle = \"x\"\nslug = \"x\"\ndate = \"March 1st\"\n---\nbody\n"},
		{"non iso date", "---\ntitle = \"x\"\nslug = \"x\"\ndate = \"2024-3-1\"\n---\nbody\n"},
		{"unsafe slug", "---\ntitle = \"x\"\nslug = \"a/b\"\n---\nbody\n"},
		{"invalid toml", "---\ntitle =\n---\nbody\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad.gmi", []byte(tc.src))
			var mferr *MalformedFrontmatterError
			require.Error(t, err)
			assert.True(t, errors.As(err, &mferr))
		})
	}
}

func TestParseBodyAfterClosingDelimiterIsExact(t *testing.T) {
	// The body keeps leading blank lines and trailing whitespace untouched.
	src := "---\ntitle = \"x\"\nslug = \"x\"\n---\n\n\nspaced out  \n"

	doc, err := Parse("x.gmi", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "\n\nspaced out  \n", doc.Body)
}

func TestParseEmptyBody(t *testing.T) {
	doc, err := Parse("x.gmi", []byte("---\ntitle = \"x\"\nslug = \"x\"\n---"))
	require.NoError(t, err)
	assert.Equal(t, "", doc.Body)
}
