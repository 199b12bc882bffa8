package tui

import (
	"strings"
	"testing"

	"board-cli/internal/dom"
	"board-cli/internal/model"
	"board-cli/internal/templates"
	"board-cli/internal/views"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestModel(t *testing.T) appModel {
	t.Helper()
	m, err := newAppModel(templates.Default(), nil)
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	return m
}

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		mm, ok := next.(appModel)
		if !ok {
			t.Fatalf("expected appModel from Update, got %T", next)
		}
		m = mm
	}
	return m
}

func plainView(m appModel) string { return xansi.Strip(m.View()) }

func TestForm_ValidSubmitAddsProjectAndClears(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("Board"), keyTab, runes("Build the board"), keyTab, runes("2"), keyEnter)

	got := m.state.Projects()
	if len(got) != 1 {
		t.Fatalf("expected 1 project, got %d", len(got))
	}
	if got[0].Title != "Board" || got[0].People != 2 || got[0].Status != model.ProjectStatusActive {
		t.Fatalf("unexpected project: %+v", got[0])
	}
	for i, in := range m.inputs {
		if in.Value() != "" {
			t.Fatalf("expected field %s cleared, got=%q", formFields[i], in.Value())
		}
	}
	if m.focus != focusTitle {
		t.Fatalf("expected focus back on title, got %v", m.focus)
	}

	out := plainView(m)
	for _, want := range []string{"ACTIVE PROJECTS", "FINISHED PROJECTS", "Board", "2 persons assigned", "Build the board"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q, got=%q", want, out)
		}
	}
}

func TestForm_InvalidSubmitShowsBlockingAlert(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("T"), keyTab, runes("tiny"), keyEnter)

	if len(m.state.Projects()) != 0 {
		t.Fatalf("expected no project to be added")
	}
	if !strings.Contains(plainView(m), "Invalid input, please try again!") {
		t.Fatalf("expected alert in view, got=%q", plainView(m))
	}

	// Other keys do not get past the alert.
	m = press(t, m, runes("x"), keyTab)
	if _, ok := m.alerts.current(); !ok {
		t.Fatalf("expected alert to stay until acknowledged")
	}
	if m.inputs[1].Value() != "tiny" {
		t.Fatalf("expected keys to be swallowed by the alert, got description=%q", m.inputs[1].Value())
	}

	m = press(t, m, keyEnter)
	if _, ok := m.alerts.current(); ok {
		t.Fatalf("expected enter to dismiss the alert")
	}
	if m.inputs[0].Value() != "T" || m.inputs[1].Value() != "tiny" {
		t.Fatalf("expected fields kept after rejection, got title=%q description=%q", m.inputs[0].Value(), m.inputs[1].Value())
	}
}

func TestForm_QIsTypedNotQuit(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("q"))
	if m.inputs[0].Value() != "q" {
		t.Fatalf("expected q to be typed into the title, got=%q", m.inputs[0].Value())
	}
}

func TestDrag_MovesProjectToFinished(t *testing.T) {
	m := newTestModel(t)
	p := m.state.AddProject("Ship", "ship the release", 3)

	m = press(t, m, keyEsc)
	if m.focus != focusActive {
		t.Fatalf("expected esc to focus the active list, got %v", m.focus)
	}

	m = press(t, m, keySpace)
	if m.drag == nil || m.drag.projectID != p.ID {
		t.Fatalf("expected drag of %s to start, got %+v", p.ID, m.drag)
	}
	if !dom.HasClass(m.board.Active.ListElement(), views.DroppableClass) {
		t.Fatalf("expected active list to accept the hover")
	}

	m = press(t, m, keyRight)
	if dom.HasClass(m.board.Active.ListElement(), views.DroppableClass) {
		t.Fatalf("expected dragleave to clear the active list")
	}
	if !dom.HasClass(m.board.Finished.ListElement(), views.DroppableClass) {
		t.Fatalf("expected finished list to show the drop affordance")
	}
	if !strings.Contains(plainView(m), "⇅ Ship") {
		t.Fatalf("expected dragged card marker in view")
	}

	m = press(t, m, keyEnter)
	if m.drag != nil {
		t.Fatalf("expected drag to end on drop")
	}
	if got := m.state.Projects()[0].Status; got != model.ProjectStatusFinished {
		t.Fatalf("expected project finished, got %s", got)
	}
	if dom.HasClass(m.board.Finished.ListElement(), views.DroppableClass) {
		t.Fatalf("expected drop affordance cleared after drop")
	}
	if m.focus != focusFinished {
		t.Fatalf("expected focus to follow the dropped project, got %v", m.focus)
	}
	if len(m.board.Active.Projects()) != 0 || len(m.board.Finished.Projects()) != 1 {
		t.Fatalf("expected project only in finished list")
	}
}

func TestDrag_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m.state.AddProject("Stay", "stays active", 1)

	m = press(t, m, keyEsc, keySpace, keyRight, keyEsc)
	if m.drag != nil {
		t.Fatalf("expected esc to cancel the drag")
	}
	if got := m.state.Projects()[0].Status; got != model.ProjectStatusActive {
		t.Fatalf("expected project to stay active, got %s", got)
	}
	for _, l := range m.board.Lists() {
		if dom.HasClass(l.ListElement(), views.DroppableClass) {
			t.Fatalf("expected no droppable list after cancel (%s)", l.Status())
		}
	}
}

func TestDrag_DropOnSameListIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.state.AddProject("A", "first one", 1)

	notified := 0
	m.state.AddListener(func([]model.Project) { notified++ })
	m = press(t, m, keyEsc, keySpace, keyEnter)
	if notified != 0 {
		t.Fatalf("expected no notification for a same-list drop, got %d", notified)
	}
}

func TestListSelectionPicksSecondCard(t *testing.T) {
	m := newTestModel(t)
	m.state.AddProject("A", "first one", 1)
	b := m.state.AddProject("B", "second one", 1)

	m = press(t, m, keyEsc, keyDown, keyDown, keySpace)
	if m.drag == nil || m.drag.projectID != b.ID {
		t.Fatalf("expected second card to be picked up (selection clamps), got %+v", m.drag)
	}
}

func TestSpaceOnEmptyListDoesNothing(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyEsc, keySpace)
	if m.drag != nil {
		t.Fatalf("expected no drag on an empty list")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyEsc, runes("?"))
	if !m.showHelp {
		t.Fatalf("expected ? to open help from the lists")
	}
	if !strings.Contains(plainView(m), "selected project") {
		t.Fatalf("expected keys help in view, got=%q", plainView(m))
	}
	m = press(t, m, keyEsc)
	if m.showHelp {
		t.Fatalf("expected esc to close help")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(appModel)
	for _, ln := range strings.Split(plainView(m), "\n") {
		if xansi.StringWidth(ln) > 60 {
			t.Fatalf("expected lines to fit 60 columns, got %d: %q", xansi.StringWidth(ln), ln)
		}
	}
}

func TestFitBlock(t *testing.T) {
	got := fitBlock("abcdef\nx", 4, 3)
	want := "abc…\nx   \n    "
	if got != want {
		t.Fatalf("fitBlock: expected %q, got %q", want, got)
	}
	if w := splitWidths(9, 2); w[0] != 5 || w[1] != 4 {
		t.Fatalf("splitWidths: expected [5 4], got %v", w)
	}
}

func TestASCIIGlyphs(t *testing.T) {
	setGlyphs(glyphSetASCII)
	defer setGlyphs(glyphSetUnicode)

	if got := fitBlock("abcdef", 5, 0); got != "ab..." {
		t.Fatalf("expected ascii ellipsis, got %q", got)
	}
	if got := fitBlock("abcdef", 2, 0); got != "ab" {
		t.Fatalf("expected plain cut when the tail does not fit, got %q", got)
	}
	if glyphDragging() != "<>" {
		t.Fatalf("expected ascii drag marker, got %q", glyphDragging())
	}
}
