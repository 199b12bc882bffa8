// Package views holds the board's components: the project input form, the active and
// finished project lists, and the project cards inside them.
package views

import (
	"io"
	"log/slog"

	"board-cli/internal/dom"
	"board-cli/internal/model"
	"board-cli/internal/state"
)

// App is the mounted board: the form followed by the active and finished lists.
type App struct {
	Doc      *dom.Document
	State    *state.ProjectState
	Input    *ProjectInput
	Active   *ProjectList
	Finished *ProjectList

	lists []*ProjectList
}

func NewApp(doc *dom.Document, st *state.ProjectState, alerter Alerter, logger *slog.Logger) (*App, error) {
	app := &App{Doc: doc, State: st}
	var err error
	if app.Input, err = NewProjectInput(doc, st, alerter, logger); err != nil {
		return nil, err
	}
	for _, status := range model.ProjectStatuses {
		l, err := NewProjectList(doc, st, status, logger)
		if err != nil {
			return nil, err
		}
		app.lists = append(app.lists, l)
	}
	app.Active = app.List(model.ProjectStatusActive)
	app.Finished = app.List(model.ProjectStatusFinished)
	return app, nil
}

// Lists returns the lists in board order.
func (a *App) Lists() []*ProjectList {
	return append([]*ProjectList(nil), a.lists...)
}

// List returns the list showing status, or nil.
func (a *App) List(status model.ProjectStatus) *ProjectList {
	for _, l := range a.lists {
		if l.Status() == status {
			return l
		}
	}
	return nil
}

// Item finds the rendered card for project id.
func (a *App) Item(id string) *ProjectItem {
	for _, l := range a.Lists() {
		for _, it := range l.Items() {
			if it.Project().ID == id {
				return it
			}
		}
	}
	return nil
}

// DragProject runs a full drag of project id onto the list showing status: dragstart on
// the card, dragover and drop on the list (drop only when dragover accepted the
// payload), then dragleave on the list and dragend on the card. The dragleave clears the
// drop affordance the way a terminal host ends a hover.
func (a *App) DragProject(id string, status model.ProjectStatus) bool {
	item := a.Item(id)
	target := a.List(status)
	if item == nil || target == nil {
		return false
	}
	source := item.Element
	dt := dom.NewDataTransfer()
	a.Doc.Dispatch(source, dom.NewDragEvent(dom.EventDragStart, dt))
	accepted := a.Doc.Dispatch(target.ListElement(), dom.NewDragEvent(dom.EventDragOver, dt))
	if accepted {
		a.Doc.Dispatch(target.ListElement(), dom.NewDragEvent(dom.EventDrop, dt))
	}
	a.Doc.Dispatch(target.Element, dom.NewDragEvent(dom.EventDragLeave, dt))
	a.Doc.Dispatch(source, dom.NewDragEvent(dom.EventDragEnd, dt))
	a.Doc.Prune()
	return accepted
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
