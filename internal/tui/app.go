package tui

import (
	"strings"

	"board-cli/internal/docs"
	"board-cli/internal/dom"
	"board-cli/internal/views"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

func (m appModel) View() string {
	if msg, ok := m.alerts.current(); ok {
		return m.placeCenter(renderAlert(msg, m.width))
	}
	if m.showHelp {
		return m.placeCenter(renderHelp(m.width))
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render("Project Board")
	form := m.viewForm()
	lists := m.viewLists()
	footer := styleMuted().Width(max(20, m.width)).Render(m.footerHint())
	return strings.Join([]string{header, form, lists, footer}, "\n\n")
}

func (m appModel) footerHint() string {
	switch {
	case m.drag != nil:
		return "left/right: choose list  enter: drop  esc: cancel"
	case m.focus.isForm():
		return "tab: next field  enter: add project  esc: lists  f1: help  ctrl+c: quit"
	default:
		return "up/down: select  space: pick up  tab: focus  ?: help  q: quit"
	}
}

// viewForm renders the project-input form element: one row per label, with the bound
// text input in place of the control, then the submit button.
func (m appModel) viewForm() string {
	form := m.board.Input.Element
	labels, _ := dom.QuerySelectorAll(form, "label")

	labelW := 0
	for _, lb := range labels {
		if w := lipgloss.Width(strings.TrimSpace(dom.TextContent(lb))); w > labelW {
			labelW = w
		}
	}

	var rows []string
	for _, lb := range labels {
		field, _ := dom.Attr(lb, "for")
		idx := fieldIndex(field)
		if idx < 0 {
			continue
		}
		label := lipgloss.NewStyle().Width(labelW + 2).Render(strings.TrimSpace(dom.TextContent(lb)))
		inputStyle := lipgloss.NewStyle().Background(colorControlBg).Width(max(20, m.width-labelW-8))
		if focusArea(idx) == m.focus {
			label = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Width(labelW + 2).Render(strings.TrimSpace(dom.TextContent(lb)))
		}
		rows = append(rows, label+inputStyle.Render(m.inputs[idx].View()))
	}

	if btn, _ := dom.QuerySelector(form, "button"); btn != nil {
		st := lipgloss.NewStyle().Padding(0, 1).Background(colorAccent).Foreground(colorAccentFg).Bold(true)
		rows = append(rows, "", st.Render(strings.TrimSpace(dom.TextContent(btn))))
	}
	return strings.Join(rows, "\n")
}

func fieldIndex(id string) int {
	for i, name := range formFields {
		if name == id {
			return i
		}
	}
	return -1
}

func (m appModel) viewLists() string {
	lists := m.board.Lists()
	widths := splitWidths(max(40, m.width), len(lists))
	height := max(6, m.height-16)

	cols := make([]string, 0, len(lists))
	for i, l := range lists {
		cols = append(cols, fitBlock(m.viewList(l, widths[i]-1), widths[i], height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// viewList renders a project-list section: heading, then one card per <li>. The border
// reflects focus and the droppable class.
func (m appModel) viewList(l *views.ProjectList, width int) string {
	status := l.Status()
	focused := m.focus == focusForStatus(status)

	heading := ""
	if h2, _ := dom.QuerySelector(l.Element, "header h2"); h2 != nil {
		heading = strings.TrimSpace(dom.TextContent(h2))
	}

	ul := l.ListElement()
	cards := dom.Children(ul)
	sel := clampIndex(m.selected[status], len(cards))

	inner := max(10, width-4)
	var parts []string
	parts = append(parts, lipgloss.NewStyle().Bold(true).Render(heading))
	if len(cards) == 0 {
		parts = append(parts, styleMuted().Render("(no projects)"))
	}
	for i, li := range cards {
		parts = append(parts, m.viewCard(li, inner, focused && i == sel))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Width(width - 2)
	switch {
	case dom.HasClass(ul, views.DroppableClass):
		border = border.BorderForeground(colorDropBorder).BorderStyle(lipgloss.DoubleBorder())
	case focused:
		border = border.BorderForeground(colorSelectedBorder)
	}
	return border.Render(strings.Join(parts, "\n"))
}

// viewCard renders a single-project <li>: title (h2), people (h3), description (p).
func (m appModel) viewCard(li *html.Node, width int, selected bool) string {
	text := func(sel string) string {
		n, _ := dom.QuerySelector(li, sel)
		if n == nil {
			return ""
		}
		return strings.TrimSpace(dom.TextContent(n))
	}

	title := text("h2")
	if m.drag != nil && m.drag.projectID == dom.ID(li) {
		title = glyphDragging() + " " + title
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(title),
		styleMuted().Render(text("h3")),
	}
	if desc := text("p"); desc != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(desc))
	}

	st := lipgloss.NewStyle().Width(width).MarginTop(1)
	if selected {
		st = st.Background(colorSelectedBg).Foreground(colorSelectedFg)
	}
	return st.Render(strings.Join(lines, "\n"))
}

func renderAlert(msg string, width int) string {
	w := min(max(30, lipgloss.Width(msg)+6), max(30, width-4))
	body := lipgloss.NewStyle().Bold(true).Render(msg) + "\n\n" + styleMuted().Render("enter: OK")
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(colorAlertBg).
		Padding(1, 2).
		Width(w).
		Render(body)
}

func renderHelp(width int) string {
	md, _ := docs.Get("keys")
	w := min(80, max(30, width-8))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(0, 1).
		Render(renderMarkdown(md, w))
}

func (m appModel) placeCenter(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
