package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitBlock pads or truncates s (ANSI-aware) to exactly width columns per line. A height
// above zero also pads or cuts the line count, so columns joined with
// lipgloss.JoinHorizontal line up.
func fitBlock(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		tail := glyphEllipsis()
		if width <= xansi.StringWidth(tail) {
			tail = ""
		}
		ln = xansi.Truncate(ln, width, tail)
	}
	if w = xansi.StringWidth(ln); w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// splitWidths divides total columns into n widths that differ by at most one.
func splitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
		if i < total%n {
			out[i]++
		}
	}
	return out
}
