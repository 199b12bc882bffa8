package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := strings.Join(Topics(), ",")
	if got != "keys,scripting" {
		t.Fatalf("expected topics keys,scripting, got=%q", got)
	}
}

func TestGet(t *testing.T) {
	body, ok := Get(" KEYS ")
	if !ok {
		t.Fatalf("expected keys topic")
	}
	if !strings.Contains(body, "pick up") {
		t.Fatalf("expected keys topic to describe drag, got=%q", body)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty topic to be missing")
	}
}

func TestLookupTitles(t *testing.T) {
	cases := []struct {
		name  string
		title string
	}{
		{"keys", "Keys"},
		{"Scripting", "Scripting"},
	}
	for _, tc := range cases {
		got, ok := Lookup(tc.name)
		if !ok {
			t.Fatalf("expected topic %q", tc.name)
		}
		if got.Title != tc.title {
			t.Fatalf("expected title %q for %q, got=%q", tc.title, tc.name, got.Title)
		}
	}
	if n := len(All()); n != 2 {
		t.Fatalf("expected 2 topics, got=%d", n)
	}
}

func TestTitleFallback(t *testing.T) {
	if got := title("no heading here\n## sub\n", "plain"); got != "plain" {
		t.Fatalf("expected fallback title, got=%q", got)
	}
	if got := title("\n  # Board  \ntext", "x"); got != "Board" {
		t.Fatalf("expected Board, got=%q", got)
	}
}
