package views

import (
	"fmt"
	"log/slog"

	"board-cli/internal/component"
	"board-cli/internal/dom"
	"board-cli/internal/model"

	"golang.org/x/net/html"
)

// DragType is the payload type a project item drag carries (the project id).
const DragType = "text/plain"

// ProjectItem renders one project card and is the source of drags.
type ProjectItem struct {
	*component.Base

	project model.Project
	logger  *slog.Logger

	title  *html.Node
	people *html.Node
	desc   *html.Node
}

var _ component.Component = (*ProjectItem)(nil)

// NewProjectItem appends a card for p to the element with id hostID.
func NewProjectItem(doc *dom.Document, hostID string, p model.Project, logger *slog.Logger) (*ProjectItem, error) {
	base, err := component.Attach(doc, component.Spec{
		TemplateID:   "single-project",
		HostID:       hostID,
		NewElementID: p.ID,
	})
	if err != nil {
		return nil, err
	}
	it := &ProjectItem{Base: base, project: p, logger: orDiscard(logger)}
	if it.title, err = base.Find("h2"); err != nil {
		return nil, fmt.Errorf("project item: %w", err)
	}
	if it.people, err = base.Find("h3"); err != nil {
		return nil, fmt.Errorf("project item: %w", err)
	}
	if it.desc, err = base.Find("p"); err != nil {
		return nil, fmt.Errorf("project item: %w", err)
	}
	it.Configure()
	it.RenderContent()
	return it, nil
}

func (it *ProjectItem) Project() model.Project { return it.project }

// Persons is the assigned-people phrase without the trailing "assigned".
func (it *ProjectItem) Persons() string {
	return PersonsPhrase(it.project.People)
}

// PersonsPhrase returns "1 person" for one and "<n> persons" otherwise.
func PersonsPhrase(n int) string {
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", n)
}

func (it *ProjectItem) Configure() {
	it.On(dom.EventDragStart, it.dragStart)
	it.On(dom.EventDragEnd, it.dragEnd)
}

func (it *ProjectItem) RenderContent() {
	it.Doc.SetTextContent(it.title, it.project.Title)
	it.Doc.SetTextContent(it.people, it.Persons()+" assigned")
	it.Doc.SetTextContent(it.desc, it.project.Description)
}

func (it *ProjectItem) dragStart(ev *dom.Event) {
	if ev.DataTransfer == nil {
		return
	}
	ev.DataTransfer.SetData(DragType, it.project.ID)
	ev.DataTransfer.EffectAllowed = "move"
}

// dragEnd changes nothing.
func (it *ProjectItem) dragEnd(*dom.Event) {
	it.logger.Debug("drag end", slog.String("project", it.project.ID))
}
