package tui

import (
	"log/slog"

	"board-cli/internal/dom"
	"board-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/net/html"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other input-internal messages.
	if m.focus.isForm() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Alerts block everything else until acknowledged.
	if _, ok := m.alerts.current(); ok {
		switch k.String() {
		case "enter", "esc", " ", "space":
			m.alerts.dismiss()
		}
		return m, nil
	}

	if k.String() == "f1" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		switch k.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	if m.drag != nil {
		return m.updateDragKey(k)
	}
	if m.focus.isForm() {
		return m.updateFormKey(k)
	}
	return m.updateListKey(k)
}

func (m appModel) updateFormKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "esc":
		return m, m.setFocus(focusActive)
	case "enter":
		m.submitForm()
		if _, alerted := m.alerts.current(); !alerted {
			return m, m.setFocus(focusTitle)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(k)
	return m, cmd
}

func (m appModel) updateListKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	status, _ := m.focus.status()
	switch k.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "left", "h", "right", "l":
		return m, m.setFocus(focusForStatus(otherStatus(status)))
	case "up", "k":
		if m.selected[status] > 0 {
			m.selected[status]--
		}
		return m, nil
	case "down", "j":
		if m.selected[status] < len(m.board.List(status).Items())-1 {
			m.selected[status]++
		}
		return m, nil
	case " ", "space":
		m.startDrag()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateDragKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "left", "h", "right", "l", "tab", "shift+tab":
		m.dragOver(otherStatus(m.drag.over))
	case "enter", " ", "space":
		m.dropDrag()
	case "esc":
		m.cancelDrag()
	}
	return m, nil
}

// setFocus moves focus and keeps exactly the focused form field focused.
func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focusArea(i) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// submitForm copies the field values into the form element, dispatches submit and reads
// the values back (cleared on success, kept when the input was rejected).
func (m *appModel) submitForm() {
	in := m.board.Input
	in.SetValues(m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value())
	in.Submit()
	for i, name := range formFields {
		if v := dom.Value(in.Field(name)); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
	m.doc.Prune()
}

func (m *appModel) startDrag() {
	status, ok := m.focus.status()
	if !ok {
		return
	}
	items := m.board.List(status).Items()
	if len(items) == 0 {
		return
	}
	it := items[clampIndex(m.selected[status], len(items))]

	dt := dom.NewDataTransfer()
	m.doc.Dispatch(it.Element, dom.NewDragEvent(dom.EventDragStart, dt))
	m.drag = &dragState{projectID: it.Project().ID, source: it.Element, dt: dt}
	m.logger.Debug("drag start", slog.String("project", it.Project().ID))
	m.dragOver(status)
}

// dragOver moves the hover to the list showing status: dragleave on the previous list,
// dragover on the new one.
func (m *appModel) dragOver(status model.ProjectStatus) {
	d := m.drag
	if d.over != "" && d.over != status {
		m.doc.Dispatch(m.board.List(d.over).ListElement(), dom.NewDragEvent(dom.EventDragLeave, d.dt))
	}
	d.accepted = m.doc.Dispatch(m.board.List(status).ListElement(), dom.NewDragEvent(dom.EventDragOver, d.dt))
	d.over = status
	m.setFocus(focusForStatus(status))
}

func (m *appModel) dropDrag() {
	d := m.drag
	target := m.board.List(d.over).ListElement()
	if d.accepted {
		m.doc.Dispatch(target, dom.NewDragEvent(dom.EventDrop, d.dt))
	}
	m.endDrag(target)
	m.selectProject(d.projectID)
}

func (m *appModel) cancelDrag() {
	m.endDrag(m.board.List(m.drag.over).ListElement())
}

// endDrag clears the hover on target and sends dragend to the source card.
func (m *appModel) endDrag(target *html.Node) {
	d := m.drag
	m.doc.Dispatch(target, dom.NewDragEvent(dom.EventDragLeave, d.dt))
	m.doc.Dispatch(d.source, dom.NewDragEvent(dom.EventDragEnd, d.dt))
	m.logger.Debug("drag finished", slog.String("project", d.projectID), slog.String("effect", d.dt.DropEffect))
	m.drag = nil
	m.doc.Prune()
}

func (m *appModel) selectProject(id string) {
	for _, l := range m.board.Lists() {
		for i, it := range l.Items() {
			if it.Project().ID == id {
				m.selected[l.Status()] = i
				m.setFocus(focusForStatus(l.Status()))
				return
			}
		}
	}
}

func otherStatus(s model.ProjectStatus) model.ProjectStatus {
	if s == model.ProjectStatusActive {
		return model.ProjectStatusFinished
	}
	return model.ProjectStatusActive
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
