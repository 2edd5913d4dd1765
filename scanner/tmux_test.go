package scanner

import (
	"testing"

	"github.com/bufjump/bufjump/model"
)

func TestParsePanes(t *testing.T) {
	out := "%1\tnvim\t/home/user/proj\tsrc/main.go\t1724990000\n" +
		"%2\tbash\t/home/user\tbash\t1724990100\n" +
		"%3\tvim\t/home/user/docs\t/home/user/docs/notes.md\t1724990200\n" +
		"%4\tnvim\t/home/user/proj\tmy-host\t1724990300\n"

	items := parsePanes(out)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}

	first := items[0]
	if first.Path != "/home/user/proj/src/main.go" {
		t.Fatalf("expected joined relative title, got %q", first.Path)
	}
	if first.Pane != "%1" {
		t.Fatalf("expected pane id, got %q", first.Pane)
	}
	if first.Source != model.SourceTmux {
		t.Fatalf("expected tmux source, got %q", first.Source)
	}
	if first.Time.IsZero() {
		t.Fatalf("expected activity time to parse")
	}

	second := items[1]
	if second.Path != "/home/user/docs/notes.md" {
		t.Fatalf("expected absolute title kept, got %q", second.Path)
	}
}

func TestParsePanesMalformed(t *testing.T) {
	if items := parsePanes(""); items != nil {
		t.Fatalf("expected nil for empty output, got %v", items)
	}
	if items := parsePanes("%1\tnvim\tjust-three-fields\n"); items != nil {
		t.Fatalf("expected nil for malformed lines, got %v", items)
	}
}

func TestPathFromTitle(t *testing.T) {
	cases := []struct {
		title string
		cwd   string
		want  string
	}{
		{"main.go", "/proj", "/proj/main.go"},
		{"src/app.go (~/proj) - NVIM", "/proj", "/proj/src/app.go"},
		{"/abs/path/file.ts", "/proj", "/abs/path/file.ts"},
		{"", "/proj", ""},
		{"~", "/proj", ""},
		{"hostname", "/proj", ""},
		{"main.go", "", ""},
	}

	for _, c := range cases {
		got, ok := pathFromTitle(c.title, c.cwd)
		if c.want == "" {
			if ok {
				t.Fatalf("pathFromTitle(%q, %q) expected rejection, got %q", c.title, c.cwd, got)
			}
			continue
		}
		if !ok || got != c.want {
			t.Fatalf("pathFromTitle(%q, %q) expected %q, got %q (ok=%v)", c.title, c.cwd, c.want, got, ok)
		}
	}
}
