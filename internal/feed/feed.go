// Package feed builds the Atom feed for the HTML tree.
package feed

import (
	"strings"

	"github.com/gorilla/feeds"

	"github.com/genericlastname/crosspub/internal/config"
	"github.com/genericlastname/crosspub/internal/document"
)

// Atom renders an Atom feed for the given posts, which must already be
// sorted newest first.
func Atom(site config.Site, posts []*document.Document) (string, error) {
	base := strings.TrimSuffix(site.URL, "/")

	f := &feeds.Feed{
		Title:  site.Name,
		Link:   &feeds.Link{Href: base + "/"},
		Author: &feeds.Author{Name: site.Username},
	}
	if len(posts) > 0 {
		f.Updated = posts[0].Date
	}

	for _, p := range posts {
		href := base + "/posts/" + p.Slug + ".html"
		f.Items = append(f.Items, &feeds.Item{
			Id:      href,
			Title:   p.Title,
			Link:    &feeds.Link{Href: href},
			Author:  &feeds.Author{Name: site.Username},
			Created: p.Date,
			Content: p.Body,
		})
	}

	return f.ToAtom()
}
