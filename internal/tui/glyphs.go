package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render arrows and ellipses badly; BOARD_TUI_GLYPHS=ascii swaps
// them for plain characters.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("BOARD_TUI_GLYPHS"))) {
	case "ascii":
		setGlyphs(glyphSetASCII)
	case "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

// glyphDragging marks the card being dragged.
func glyphDragging() string {
	if glyphs() == glyphSetASCII {
		return "<>"
	}
	return "⇅"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "..."
	}
	return "…"
}
