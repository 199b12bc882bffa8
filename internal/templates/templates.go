// Package templates provides the board's document markup: the app mount point and the
// project-input, project-list and single-project templates.
package templates

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed index.html
var indexHTML string

// Default returns the embedded markup.
func Default() string { return indexHTML }

// Load returns the markup at path, or the embedded markup when path is empty.
func Load(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return indexHTML, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read templates: %w", err)
	}
	return string(b), nil
}
