// Package xmltree parses disclosure XML into a small read-only element tree
// and provides tolerant, nil-safe accessors over it.
package xmltree

import (
	"database/sql"
	"encoding/xml"
)

// Node is a parsed XML element. Nodes are never mutated after Parse returns,
// so a tree may be read from several goroutines at once.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	text     string
}

// Tag returns the element name in "{namespace}local" form, or just the local
// name when the element has no namespace.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	if n.Name.Space == "" {
		return n.Name.Local
	}
	return "{" + n.Name.Space + "}" + n.Name.Local
}

// Child returns the first child element with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name.Local == name {
			return c
		}
	}
	return nil
}

// FirstChild returns the first child matching any candidate name, trying the
// candidates in order.
func (n *Node) FirstChild(names ...string) *Node {
	for _, name := range names {
		if c := n.Child(name); c != nil {
			return c
		}
	}
	return nil
}

// Elements returns every child element matching the first candidate name that
// has at least one match.
func (n *Node) Elements(names ...string) []*Node {
	if n == nil {
		return nil
	}
	for _, name := range names {
		var out []*Node
		for _, c := range n.Children {
			if c.Name.Local == name {
				out = append(out, c)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Attr returns the value of the attribute with the given local name.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Has reports whether a child element or attribute named name exists,
// regardless of its content.
func (n *Node) Has(name string) bool {
	if n.Child(name) != nil {
		return true
	}
	_, ok := n.Attr(name)
	return ok
}

// Get returns the cleaned value of the first candidate present on n, looking
// at child elements before attributes. A field that is missing under every
// candidate name comes back invalid; an empty element comes back as a valid
// empty string.
func (n *Node) Get(names ...string) sql.NullString {
	if n == nil {
		return Absent
	}
	for _, name := range names {
		if c := n.Child(name); c != nil {
			return Present(c.text)
		}
		if v, ok := n.Attr(name); ok {
			return Present(v)
		}
	}
	return Absent
}

// Text is Get with absence collapsed to the empty string.
func (n *Node) Text(names ...string) string {
	return n.Get(names...).String
}

// Flag reports whether the first present candidate holds the "Y" flag.
func (n *Node) Flag(names ...string) bool {
	return AsFlag(n.Get(names...))
}

// Value returns the element's own cleaned text.
func (n *Node) Value() string {
	return Clean(n)
}

// Resolve looks the candidate names up on each scope node in turn and returns
// the first present value. It is used for fields that moved between sub-trees
// across schema revisions.
func Resolve(scopes []*Node, names ...string) sql.NullString {
	for _, s := range scopes {
		if v := s.Get(names...); v.Valid {
			return v
		}
	}
	return Absent
}

// Path walks nested child names, returning nil as soon as a step is missing.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

