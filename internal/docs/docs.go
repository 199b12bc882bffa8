// Package docs holds the board's built-in help pages: the key bindings and the render
// script format.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed content/*.md
var contentFS embed.FS

// Topic is one help page. Title is the text of its first "# " heading.
type Topic struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Markdown string `json:"-"`
}

var loadTopics = sync.OnceValue(func() []Topic {
	paths, _ := fs.Glob(contentFS, "content/*.md")
	out := make([]Topic, 0, len(paths))
	for _, p := range paths {
		b, err := contentFS.ReadFile(p)
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(path.Base(p), ".md")
		out = append(out, Topic{Name: name, Title: title(string(b), name), Markdown: string(b)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
})

func title(md, fallback string) string {
	for _, ln := range strings.Split(md, "\n") {
		if h, ok := strings.CutPrefix(strings.TrimSpace(ln), "# "); ok {
			return strings.TrimSpace(h)
		}
	}
	return fallback
}

// All returns every topic, sorted by name.
func All() []Topic {
	return append([]Topic(nil), loadTopics()...)
}

// Topics lists the topic names, sorted.
func Topics() []string {
	names := make([]string, 0, len(loadTopics()))
	for _, t := range loadTopics() {
		names = append(names, t.Name)
	}
	return names
}

// Lookup finds a topic by name, ignoring case and surrounding space.
func Lookup(name string) (Topic, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range loadTopics() {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// Get returns the markdown for a topic.
func Get(name string) (string, bool) {
	t, ok := Lookup(name)
	return t.Markdown, ok
}
