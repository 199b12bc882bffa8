package tui

import (
	"fmt"
	"io"
	"log/slog"

	"board-cli/internal/dom"
	"board-cli/internal/model"
	"board-cli/internal/state"
	"board-cli/internal/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/net/html"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDescription
	focusPeople
	focusActive
	focusFinished

	focusCount
)

// formFields maps form focus areas to the form control ids, in tab order.
var formFields = []string{"title", "description", "people"}

func (f focusArea) isForm() bool { return f <= focusPeople }

func (f focusArea) status() (model.ProjectStatus, bool) {
	switch f {
	case focusActive:
		return model.ProjectStatusActive, true
	case focusFinished:
		return model.ProjectStatusFinished, true
	default:
		return "", false
	}
}

func focusForStatus(s model.ProjectStatus) focusArea {
	if s == model.ProjectStatusFinished {
		return focusFinished
	}
	return focusActive
}

// alertQueue collects messages from the views' Alerter; the model shows them one at a
// time as a modal that must be dismissed.
type alertQueue struct {
	msgs []string
}

func (q *alertQueue) Alert(msg string) { q.msgs = append(q.msgs, msg) }

func (q *alertQueue) current() (string, bool) {
	if len(q.msgs) == 0 {
		return "", false
	}
	return q.msgs[0], true
}

func (q *alertQueue) dismiss() {
	if len(q.msgs) > 0 {
		q.msgs = q.msgs[1:]
	}
}

// dragState tracks a key-driven drag from pickup to drop or cancel.
type dragState struct {
	projectID string
	source    *html.Node
	dt        *dom.DataTransfer
	over      model.ProjectStatus
	accepted  bool
}

type appModel struct {
	doc    *dom.Document
	state  *state.ProjectState
	board  *views.App
	alerts *alertQueue
	logger *slog.Logger

	width  int
	height int

	focus    focusArea
	inputs   []textinput.Model
	selected map[model.ProjectStatus]int
	drag     *dragState
	showHelp bool
}

func newAppModel(markup string, logger *slog.Logger) (appModel, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		return appModel{}, err
	}
	st := state.New(state.WithLogger(logger))
	alerts := &alertQueue{}
	board, err := views.NewApp(doc, st, alerts, logger)
	if err != nil {
		return appModel{}, fmt.Errorf("mount board: %w", err)
	}

	m := appModel{
		doc:      doc,
		state:    st,
		board:    board,
		alerts:   alerts,
		logger:   logger,
		width:    100,
		height:   30,
		focus:    focusTitle,
		selected: map[model.ProjectStatus]int{},
	}
	m.inputs = make([]textinput.Model, len(formFields))
	for i, name := range formFields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		in.Placeholder = placeholderFor(name)
		m.inputs[i] = in
	}
	m.inputs[focusTitle].Focus()
	return m, nil
}

func placeholderFor(field string) string {
	switch field {
	case "title":
		return "Project title"
	case "description":
		return "What is it about? (5+ characters)"
	case "people":
		return "1-5"
	default:
		return ""
	}
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }
