// Package dom is a small in-memory document for the board's views: an HTML node tree
// (golang.org/x/net/html) with element lookup, template cloning, insertion, CSS selector
// queries and synchronous event dispatch.
//
// Nothing here knows how the tree is displayed.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Position is where InsertAdjacent places an element inside its host.
type Position int

const (
	BeforeEnd Position = iota
	AfterBegin
)

type Document struct {
	root      *html.Node
	listeners map[*html.Node][]listener
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root, listeners: map[*html.Node][]listener{}}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// GetElementByID returns the first element with the given id attribute, or nil.
func (d *Document) GetElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && ID(n) == id {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

// Element is GetElementByID that reports a missing element as a NotFoundError.
func (d *Document) Element(id string) (*html.Node, error) {
	n := d.GetElementByID(id)
	if n == nil {
		return nil, NotFoundError{Kind: "element", ID: id}
	}
	return n, nil
}

// Template returns the <template> element with the given id. Its children are the
// template content.
func (d *Document) Template(id string) (*html.Node, error) {
	n := d.GetElementByID(id)
	if n == nil || n.Type != html.ElementNode || n.Data != "template" {
		return nil, NotFoundError{Kind: "template", ID: id}
	}
	return n, nil
}

// ImportNode returns a detached deep copy of n's children wrapped in a fragment node,
// the way template content is imported.
func ImportNode(content *html.Node) *html.Node {
	frag := &html.Node{Type: html.DocumentNode}
	for c := content.FirstChild; c != nil; c = c.NextSibling {
		frag.AppendChild(cloneNode(c))
	}
	return frag
}

func cloneNode(n *html.Node) *html.Node {
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		out.Attr = make([]html.Attribute, len(n.Attr))
		copy(out.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.AppendChild(cloneNode(c))
	}
	return out
}

// InsertAdjacent detaches el from its current parent and inserts it as the first
// (AfterBegin) or last (BeforeEnd) child of host.
func InsertAdjacent(host, el *html.Node, pos Position) {
	if el.Parent != nil {
		el.Parent.RemoveChild(el)
	}
	if pos == AfterBegin {
		host.InsertBefore(el, host.FirstChild)
		return
	}
	host.AppendChild(el)
}

// ClearChildren removes every child of n. Listeners on the removed nodes stay
// registered (a drag source removed by a re-render still receives dragend) until Prune.
func (d *Document) ClearChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// SetTextContent replaces the children of n with a single text node.
func (d *Document) SetTextContent(n *html.Node, text string) {
	d.ClearChildren(n)
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Prune forgets the listeners of nodes that are no longer in the document. Hosts call it
// once an interaction has finished dispatching.
func (d *Document) Prune() int {
	n := 0
	for node := range d.listeners {
		if !d.contains(node) {
			delete(d.listeners, node)
			n++
		}
	}
	return n
}

func (d *Document) contains(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == d.root {
			return true
		}
	}
	return false
}
