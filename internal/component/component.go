// Package component attaches template instances to host elements of a dom.Document.
package component

import (
	"fmt"

	"board-cli/internal/dom"

	"golang.org/x/net/html"
)

// Component is implemented by every view. Attach does not call these; each view's
// constructor calls them in the order it needs.
type Component interface {
	Configure()
	RenderContent()
}

// Spec names the template to instantiate and where to put it.
type Spec struct {
	TemplateID    string
	HostID        string
	InsertAtStart bool
	// NewElementID, when set, becomes the id of the instantiated root element.
	NewElementID string
}

// Base is an attached template instance.
type Base struct {
	Doc      *dom.Document
	Template *html.Node
	Host     *html.Node
	Element  *html.Node
}

// Attach clones the template's first element, optionally sets its id, and inserts it at
// the start or end of the host. A missing template, host or empty template is an error.
func Attach(doc *dom.Document, spec Spec) (*Base, error) {
	tmpl, err := doc.Template(spec.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("attach %s: %w", spec.TemplateID, err)
	}
	host, err := doc.Element(spec.HostID)
	if err != nil {
		return nil, fmt.Errorf("attach %s: %w", spec.TemplateID, err)
	}

	el := dom.FirstElementChild(dom.ImportNode(tmpl))
	if el == nil {
		return nil, fmt.Errorf("attach %s: %w", spec.TemplateID, dom.NotFoundError{Kind: "template element", ID: spec.TemplateID})
	}
	if spec.NewElementID != "" {
		dom.SetID(el, spec.NewElementID)
	}

	pos := dom.BeforeEnd
	if spec.InsertAtStart {
		pos = dom.AfterBegin
	}
	dom.InsertAdjacent(host, el, pos)

	return &Base{Doc: doc, Template: tmpl, Host: host, Element: el}, nil
}

// Find returns the element inside the component matching selector.
func (b *Base) Find(selector string) (*html.Node, error) {
	return dom.Find(b.Element, selector)
}

// On registers fn for events of type typ on the component's root element.
func (b *Base) On(typ string, fn dom.Handler) {
	b.Doc.AddEventListener(b.Element, typ, fn)
}
