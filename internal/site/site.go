// Package site assembles the published output: it loads every source
// document, builds render contexts and writes the HTML and Gemini trees.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/genericlastname/crosspub/internal/config"
	"github.com/genericlastname/crosspub/internal/document"
)

// Site holds everything one run works from: the resolved configuration and
// the parsed documents, posts sorted newest first (slug breaks date ties) and
// topics sorted by slug.
type Site struct {
	Config config.Config
	Posts  []*document.Document
	Topics []*document.Document
	About  string

	// Verbose makes Generate report every file it writes.
	Verbose bool
}

// Load reads and parses every source document for a run. The posts directory
// must exist; a missing topics directory just means the site has no topics.
// When the about page is enabled the bio source is read here, before anything
// is written, so a missing bio fails the whole run.
func Load(cfg config.Config) (*Site, error) {
	s := &Site{Config: cfg}

	if _, err := os.Stat(cfg.Site.PostsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("posts directory %q not found", cfg.Site.PostsDir)
	}
	if err := s.loadDir(cfg.Site.PostsDir); err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.Site.TopicsDir); err == nil {
		if err := s.loadDir(cfg.Site.TopicsDir); err != nil {
			return nil, err
		}
	}

	sort.Slice(s.Posts, func(i, j int) bool {
		if !s.Posts[i].Date.Equal(s.Posts[j].Date) {
			return s.Posts[i].Date.After(s.Posts[j].Date)
		}
		return s.Posts[i].Slug < s.Posts[j].Slug
	})
	sort.Slice(s.Topics, func(i, j int) bool {
		return s.Topics[i].Slug < s.Topics[j].Slug
	})

	if cfg.Homepage.UseAboutPage {
		bio, err := os.ReadFile(cfg.Homepage.AboutPath)
		if err != nil {
			return nil, &AboutSourceMissingError{Path: cfg.Homepage.AboutPath}
		}
		s.About = string(bio)
	}

	return s, nil
}

// loadDir parses every .gmi file in dir. The document kind comes from the
// frontmatter (a date marks a post), not from which directory the file sits
// in.
func (s *Site) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gmi") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", path, err)
		}
		doc, err := document.Parse(path, data)
		if err != nil {
			return err
		}
		if doc.Kind == document.KindPost {
			s.Posts = append(s.Posts, doc)
		} else {
			s.Topics = append(s.Topics, doc)
		}
	}
	return nil
}
