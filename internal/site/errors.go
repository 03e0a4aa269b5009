package site

import "fmt"

// TemplateNotFoundError means a required template is missing from the bundled
// default set. Missing user overrides are not errors; they fall back silently.
type TemplateNotFoundError struct {
	Name   string
	Format string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no default %s template %q", e.Format, e.Name)
}

// AboutSourceMissingError means use_about_page is enabled but the bio source
// file could not be read. The run fails before any page is written, so
// neither output tree gets an about page.
type AboutSourceMissingError struct {
	Path string
}

func (e *AboutSourceMissingError) Error() string {
	return fmt.Sprintf("about page enabled but bio source %q is not readable", e.Path)
}

// OutputWriteError wraps a filesystem failure while writing a rendered page.
// It aborts the remaining writes for the format being generated.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
