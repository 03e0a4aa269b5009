package template

import "strings"

// Render evaluates the template against ctx. It never fails: unresolved
// variables render as empty strings, conditionals over missing values render
// nothing, and loops over missing sequences run zero times.
func (t *Template) Render(ctx Context) string {
	var b strings.Builder
	scopes := []Context{ctx}
	for _, n := range t.nodes {
		n.render(&b, scopes)
	}
	return b.String()
}

// resolve walks the scope stack innermost-first so loop variables shadow the
// page context.
func resolve(scopes []Context, path string) (Value, bool) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if v, ok := scopes[i].lookup(path); ok {
			return v, true
		}
	}
	return Value{}, false
}

func (n *textNode) render(b *strings.Builder, _ []Context) {
	b.WriteString(n.text)
}

func (n *varNode) render(b *strings.Builder, scopes []Context) {
	if v, ok := resolve(scopes, n.path); ok {
		b.WriteString(v.text())
	}
}

func (n *ifNode) render(b *strings.Builder, scopes []Context) {
	v, ok := resolve(scopes, n.path)
	if !ok || !v.truthy() {
		return
	}
	for _, child := range n.body {
		child.render(b, scopes)
	}
}

func (n *forNode) render(b *strings.Builder, scopes []Context) {
	v, ok := resolve(scopes, n.path)
	if !ok || v.kind != kindList {
		return
	}
	for _, item := range v.list {
		inner := append(scopes, Context{n.ident: Map(item)})
		for _, child := range n.body {
			child.render(b, inner)
		}
	}
}
