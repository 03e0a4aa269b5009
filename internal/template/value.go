// Package template implements the small directive language used by the page
// templates: {path} interpolation, {{ if path }} blocks and
// {{ for item in path }} loops. Templates are parsed once into a node tree
// and rendered against a Context.
//
// Rendering is deliberately lenient: a path that does not resolve produces an
// empty string, a conditional over a missing value renders nothing and a loop
// over a missing sequence runs zero times. Optional site features (about page,
// topics) rely on this.
package template

import "strings"

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindList
	kindMap
)

// Value is a tagged template value: a string, a boolean, an ordered list of
// sub-contexts, or a nested context reachable through dotted paths.
type Value struct {
	kind valueKind
	str  string
	b    bool
	list []Context
	ctx  Context
}

// String makes a string Value.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Bool makes a boolean Value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// List makes a sequence Value out of sub-contexts.
func List(items ...Context) Value { return Value{kind: kindList, list: items} }

// Map makes a nested-context Value.
func Map(c Context) Value { return Value{kind: kindMap, ctx: c} }

// text is the interpolated form of a value. Lists and maps have no useful
// string form and render empty.
func (v Value) text() string {
	switch v.kind {
	case kindString:
		return v.str
	case kindBool:
		if v.b {
			return "true"
		}
		return "false"
	}
	return ""
}

// truthy is the conditional form of a value. Non-empty strings and non-empty
// lists count as true so "has_x" flags and sequences can both gate blocks.
func (v Value) truthy() bool {
	switch v.kind {
	case kindBool:
		return v.b
	case kindString:
		return v.str != ""
	case kindList:
		return len(v.list) > 0
	case kindMap:
		return len(v.ctx) > 0
	}
	return false
}

// Context maps variable names to values for one render.
type Context map[string]Value

// lookup resolves a dotted path against the context. The second return is
// false when any path component is missing or a non-map value is dereferenced.
func (c Context) lookup(path string) (Value, bool) {
	parts := strings.Split(path, ".")
	cur := c
	for i, part := range parts {
		v, ok := cur[part]
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if v.kind != kindMap {
			return Value{}, false
		}
		cur = v.ctx
	}
	return Value{}, false
}
