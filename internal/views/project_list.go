package views

import (
	"fmt"
	"log/slog"
	"strings"

	"board-cli/internal/component"
	"board-cli/internal/dom"
	"board-cli/internal/model"
	"board-cli/internal/state"

	"golang.org/x/net/html"
)

// DroppableClass marks a list while an acceptable drag hovers over it.
const DroppableClass = "droppable"

// ProjectList shows the projects with one status and accepts drops of project items.
type ProjectList struct {
	*component.Base

	status model.ProjectStatus
	state  *state.ProjectState
	logger *slog.Logger

	list    *html.Node
	heading *html.Node

	assigned []model.Project
	items    []*ProjectItem
}

var _ component.Component = (*ProjectList)(nil)

func NewProjectList(doc *dom.Document, st *state.ProjectState, status model.ProjectStatus, logger *slog.Logger) (*ProjectList, error) {
	base, err := component.Attach(doc, component.Spec{
		TemplateID:   "project-list",
		HostID:       "app",
		NewElementID: fmt.Sprintf("%s-projects", status),
	})
	if err != nil {
		return nil, err
	}
	l := &ProjectList{Base: base, status: status, state: st, logger: orDiscard(logger)}
	if l.list, err = base.Find("ul"); err != nil {
		return nil, fmt.Errorf("project list: %w", err)
	}
	if l.heading, err = base.Find("h2"); err != nil {
		return nil, fmt.Errorf("project list: %w", err)
	}
	l.Configure()
	l.RenderContent()
	return l, nil
}

func (l *ProjectList) Status() model.ProjectStatus { return l.status }

// ListElementID is the id of the <ul> holding the cards.
func (l *ProjectList) ListElementID() string {
	return fmt.Sprintf("%s-projects-list", l.status)
}

// ListElement is the <ul> holding the cards.
func (l *ProjectList) ListElement() *html.Node { return l.list }

// Projects returns the subset from the last notification, in collection order.
func (l *ProjectList) Projects() []model.Project {
	out := make([]model.Project, len(l.assigned))
	copy(out, l.assigned)
	return out
}

// Items returns the cards currently rendered.
func (l *ProjectList) Items() []*ProjectItem {
	return append([]*ProjectItem(nil), l.items...)
}

func (l *ProjectList) Configure() {
	l.On(dom.EventDragOver, l.dragOver)
	l.On(dom.EventDragLeave, l.dragLeave)
	l.On(dom.EventDrop, l.drop)

	l.state.AddListener(func(projects []model.Project) {
		var relevant []model.Project
		for _, p := range projects {
			if p.Status == l.status {
				relevant = append(relevant, p)
			}
		}
		l.assigned = relevant
		l.renderProjects()
	})
}

func (l *ProjectList) RenderContent() {
	dom.SetID(l.list, l.ListElementID())
	l.Doc.SetTextContent(l.heading, strings.ToUpper(l.status.String())+" PROJECTS")
}

func (l *ProjectList) renderProjects() {
	l.Doc.ClearChildren(l.list)
	l.items = l.items[:0]
	for _, p := range l.assigned {
		it, err := NewProjectItem(l.Doc, l.ListElementID(), p, l.logger)
		if err != nil {
			l.logger.Error("render project item", slog.String("project", p.ID), slog.Any("err", err))
			continue
		}
		l.items = append(l.items, it)
	}
}

func (l *ProjectList) dragOver(ev *dom.Event) {
	if ev.DataTransfer == nil {
		return
	}
	types := ev.DataTransfer.Types()
	if len(types) > 0 && types[0] == DragType {
		ev.PreventDefault()
		ev.DataTransfer.DropEffect = "move"
		dom.AddClass(l.list, DroppableClass)
	}
}

func (l *ProjectList) drop(ev *dom.Event) {
	if ev.DataTransfer == nil {
		return
	}
	l.state.MoveProject(ev.DataTransfer.GetData(DragType), l.status)
}

func (l *ProjectList) dragLeave(*dom.Event) {
	dom.RemoveClass(l.list, DroppableClass)
}
