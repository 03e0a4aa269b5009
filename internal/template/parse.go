package template

import (
	"fmt"
	"regexp"
	"strings"
)

// SyntaxError reports an unbalanced or malformed directive, with the template
// name and the line the directive starts on.
type SyntaxError struct {
	Template  string
	Line      int
	Directive string
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template %s:%d: %s: %s", e.Template, e.Line, e.Directive, e.Msg)
}

var pathPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)

type node interface {
	render(b *strings.Builder, scopes []Context)
}

type textNode struct {
	text string
}

type varNode struct {
	path string
}

type ifNode struct {
	path string
	body []node
}

type forNode struct {
	ident string
	path  string
	body  []node
}

// Template is a parsed, reusable template.
type Template struct {
	name  string
	nodes []node
}

// Name reports the name the template was parsed under.
func (t *Template) Name() string { return t.name }

type parser struct {
	name string
	src  string
	pos  int
}

// Parse compiles template source into a reusable Template. The name is used
// in error messages only.
func Parse(name, src string) (*Template, error) {
	p := &parser{name: name, src: src}
	nodes, term, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if term != "" {
		return nil, p.errorf("{{ "+term+" }}", "unexpected closing directive")
	}
	return &Template{name: name, nodes: nodes}, nil
}

func (p *parser) line() int {
	return 1 + strings.Count(p.src[:p.pos], "\n")
}

func (p *parser) errorf(directive, format string, args ...interface{}) error {
	return &SyntaxError{
		Template:  p.name,
		Line:      p.line(),
		Directive: directive,
		Msg:       fmt.Sprintf(format, args...),
	}
}

// parseNodes consumes nodes until a closing directive ("endif"/"endfor") or
// end of input. It returns the closing keyword, or "" at end of input; the
// caller decides whether that terminator was expected.
func (p *parser) parseNodes() ([]node, string, error) {
	var nodes []node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, &textNode{text: text.String()})
			text.Reset()
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '{' {
			text.WriteByte(c)
			p.pos++
			continue
		}

		if strings.HasPrefix(p.src[p.pos:], "{{") {
			flush()
			directive, err := p.readDirective()
			if err != nil {
				return nil, "", err
			}
			fields := strings.Fields(directive)
			switch {
			case len(fields) == 1 && (fields[0] == "endif" || fields[0] == "endfor"):
				return nodes, fields[0], nil
			case len(fields) == 2 && fields[0] == "if":
				n, err := p.parseIf(fields[1], directive)
				if err != nil {
					return nil, "", err
				}
				nodes = append(nodes, n)
			case len(fields) == 4 && fields[0] == "for" && fields[2] == "in":
				n, err := p.parseFor(fields[1], fields[3], directive)
				if err != nil {
					return nil, "", err
				}
				nodes = append(nodes, n)
			default:
				return nil, "", p.errorf("{{ "+directive+" }}", "malformed directive")
			}
			continue
		}

		// Single brace: a variable reference if a well-formed dotted path
		// and closing brace follow, literal text otherwise (keeps CSS
		// braces in HTML templates intact).
		if path, width, ok := p.scanVariable(); ok {
			flush()
			nodes = append(nodes, &varNode{path: path})
			p.pos += width
			continue
		}
		text.WriteByte('{')
		p.pos++
	}

	flush()
	return nodes, "", nil
}

// readDirective consumes "{{ ... }}" starting at p.pos and returns the
// trimmed inner text.
func (p *parser) readDirective() (string, error) {
	end := strings.Index(p.src[p.pos:], "}}")
	if end < 0 {
		return "", p.errorf("{{", "missing closing }}")
	}
	inner := strings.TrimSpace(p.src[p.pos+2 : p.pos+end])
	p.pos += end + 2
	return inner, nil
}

func (p *parser) parseIf(path, directive string) (node, error) {
	full := "{{ " + directive + " }}"
	if !pathPattern.MatchString(path) {
		return nil, p.errorf(full, "bad condition path %q", path)
	}
	start := p.line()
	body, term, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if term != "endif" {
		return nil, &SyntaxError{
			Template:  p.name,
			Line:      start,
			Directive: full,
			Msg:       "missing matching {{ endif }}",
		}
	}
	return &ifNode{path: path, body: body}, nil
}

func (p *parser) parseFor(ident, path, directive string) (node, error) {
	full := "{{ " + directive + " }}"
	if !pathPattern.MatchString(ident) || strings.Contains(ident, ".") {
		return nil, p.errorf(full, "bad loop variable %q", ident)
	}
	if !pathPattern.MatchString(path) {
		return nil, p.errorf(full, "bad sequence path %q", path)
	}
	start := p.line()
	body, term, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if term != "endfor" {
		return nil, &SyntaxError{
			Template:  p.name,
			Line:      start,
			Directive: full,
			Msg:       "missing matching {{ endfor }}",
		}
	}
	return &forNode{ident: ident, path: path, body: body}, nil
}

// scanVariable checks whether p.pos starts a "{path}" reference. It reports
// the path, the total width including braces, and whether the match is valid.
func (p *parser) scanVariable() (string, int, bool) {
	rest := p.src[p.pos+1:]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return "", 0, false
	}
	path := rest[:end]
	if !pathPattern.MatchString(path) {
		return "", 0, false
	}
	return path, end + 2, true
}
