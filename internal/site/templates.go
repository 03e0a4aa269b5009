package site

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/genericlastname/crosspub/internal/template"
)

//go:embed templates
var bundled embed.FS

// templateNames is the full template set every format must resolve.
var templateNames = [5]string{"index", "post", "topic", "postlist", "about"}

// format describes one of the two output trees.
type format struct {
	name        string // "html" or "gemini"
	ext         string // file extension including the dot
	root        string // output root directory
	overrideDir string // user template dir, "" for none
}

// resolveTemplates loads the full template set for one format, checking the
// user override directory first and falling back to the bundled defaults. A
// missing override falls back silently; a missing default is a configuration
// error.
func resolveTemplates(f format) (map[string]*template.Template, error) {
	set := make(map[string]*template.Template, len(templateNames))
	for _, name := range templateNames {
		tpl, err := resolveTemplate(f, name)
		if err != nil {
			return nil, err
		}
		set[name] = tpl
	}
	return set, nil
}

func resolveTemplate(f format, name string) (*template.Template, error) {
	filename := name + f.ext

	if f.overrideDir != "" {
		path := filepath.Join(f.overrideDir, filename)
		src, err := os.ReadFile(path)
		if err == nil {
			return template.Parse(path, string(src))
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	src, err := bundled.ReadFile("templates/" + f.name + "/" + filename)
	if err != nil {
		return nil, &TemplateNotFoundError{Name: name, Format: f.name}
	}
	return template.Parse(filename, string(src))
}
