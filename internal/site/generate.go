package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genericlastname/crosspub/internal/document"
	"github.com/genericlastname/crosspub/internal/feed"
	"github.com/genericlastname/crosspub/internal/template"
)

// Generate writes the complete output tree for both formats. Template
// resolution failures abort a format before it writes anything; a failed
// write aborts the remaining writes. Already-written files are never rolled
// back.
func (s *Site) Generate() error {
	formats := []format{
		{
			name:        "html",
			ext:         ".html",
			root:        s.Config.Site.HTMLRoot,
			overrideDir: s.Config.Templates.CustomHTMLDir,
		},
		{
			name:        "gemini",
			ext:         ".gmi",
			root:        s.Config.Site.GeminiRoot,
			overrideDir: s.Config.Templates.CustomGeminiDir,
		},
	}

	for _, f := range formats {
		if err := s.generateFormat(f); err != nil {
			return err
		}
	}

	if err := s.writeStylesheet(); err != nil {
		return err
	}
	if s.Config.Homepage.AtomFeed {
		if err := s.writeFeed(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Site) generateFormat(f format) error {
	set, err := resolveTemplates(f)
	if err != nil {
		return err
	}

	for _, post := range s.Posts {
		path := filepath.Join(f.root, "posts", post.Slug+f.ext)
		if err := s.writePage(path, set["post"], s.postContext(post, f)); err != nil {
			return err
		}
	}
	for _, topic := range s.Topics {
		path := filepath.Join(f.root, topic.Slug+f.ext)
		if err := s.writePage(path, set["topic"], s.topicContext(topic)); err != nil {
			return err
		}
	}

	index := s.indexContext(f)
	if err := s.writePage(filepath.Join(f.root, "index"+f.ext), set["index"], index); err != nil {
		return err
	}
	if s.Config.Homepage.UseAboutPage {
		ctx := s.aboutContext()
		if err := s.writePage(filepath.Join(f.root, "about"+f.ext), set["about"], ctx); err != nil {
			return err
		}
	}
	if s.Config.Homepage.PostList {
		path := filepath.Join(f.root, "posts", "posts"+f.ext)
		if err := s.writePage(path, set["postlist"], index); err != nil {
			return err
		}
	}
	return nil
}

// siteContext is the "site" entry shared by every page context.
func (s *Site) siteContext() template.Value {
	return template.Map(template.Context{
		"name":     template.String(s.Config.Site.Name),
		"url":      template.String(s.Config.Site.URL),
		"username": template.String(s.Config.Site.Username),
	})
}

func (s *Site) postContext(post *document.Document, f format) template.Context {
	return template.Context{
		"site":      s.siteContext(),
		"post":      template.Map(postEntry(post, f)),
		"has_about": template.Bool(s.Config.Homepage.UseAboutPage),
	}
}

func (s *Site) topicContext(topic *document.Document) template.Context {
	return template.Context{
		"site": s.siteContext(),
		"topic": template.Map(template.Context{
			"title":   template.String(topic.Title),
			"slug":    template.String(topic.Slug),
			"content": template.String(topic.Body),
		}),
		"has_about": template.Bool(s.Config.Homepage.UseAboutPage),
	}
}

func (s *Site) aboutContext() template.Context {
	return template.Context{
		"site": s.siteContext(),
		"about": template.Map(template.Context{
			"content": template.String(s.About),
		}),
		"has_about": template.Bool(true),
	}
}

// indexContext also serves the postlist page; both list the full sorted post
// sequence.
func (s *Site) indexContext(f format) template.Context {
	posts := make([]template.Context, 0, len(s.Posts))
	for _, p := range s.Posts {
		posts = append(posts, postEntry(p, f))
	}
	topics := make([]template.Context, 0, len(s.Topics))
	for _, t := range s.Topics {
		topics = append(topics, template.Context{
			"title":    template.String(t.Title),
			"slug":     template.String(t.Slug),
			"filename": template.String(t.Slug + f.ext),
		})
	}

	ctx := template.Context{
		"site":         s.siteContext(),
		"posts":        template.List(posts...),
		"topics":       template.List(topics...),
		"has_topics":   template.Bool(len(s.Topics) > 0),
		"has_about":    template.Bool(s.Config.Homepage.UseAboutPage),
		"has_postlist": template.Bool(s.Config.Homepage.PostList),
	}
	if len(s.Posts) > 0 {
		ctx["latest_post"] = template.Map(postEntry(s.Posts[0], f))
	}
	return ctx
}

// postEntry is the per-post sub-context. filename is root-relative and
// basename is bare, so both the index page and the posts/ listing page can
// link correctly with relative paths.
func postEntry(p *document.Document, f format) template.Context {
	return template.Context{
		"title":     template.String(p.Title),
		"slug":      template.String(p.Slug),
		"date":      template.String(p.ISODate()),
		"long_date": template.String(p.LongDate()),
		"content":   template.String(p.Body),
		"filename":  template.String("posts/" + p.Slug + f.ext),
		"basename":  template.String(p.Slug + f.ext),
	}
}

func (s *Site) writePage(path string, tpl *template.Template, ctx template.Context) error {
	return s.writeFile(path, []byte(tpl.Render(ctx)))
}

func (s *Site) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if s.Verbose {
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// writeStylesheet puts the stylesheet at the HTML root: the user's own CSS
// when configured, the bundled default otherwise.
func (s *Site) writeStylesheet() error {
	var css []byte
	if path := s.Config.Templates.CustomCSSPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read custom stylesheet: %w", err)
		}
		css = data
	} else {
		data, err := bundled.ReadFile("templates/style.css")
		if err != nil {
			return fmt.Errorf("bundled stylesheet missing: %w", err)
		}
		css = data
	}
	return s.writeFile(filepath.Join(s.Config.Site.HTMLRoot, "style.css"), css)
}

// writeFeed renders the Atom feed of all posts into the HTML tree.
func (s *Site) writeFeed() error {
	atom, err := feed.Atom(s.Config.Site, s.Posts)
	if err != nil {
		return fmt.Errorf("could not build atom feed: %w", err)
	}
	return s.writeFile(filepath.Join(s.Config.Site.HTMLRoot, "atom.xml"), []byte(atom))
}
