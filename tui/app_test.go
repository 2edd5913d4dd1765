package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bufjump/bufjump/model"
)

func testItems(n int) []model.Item {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	items := make([]model.Item, 0, n)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i := 0; i < n; i++ {
		items = append(items, model.Item{
			Path:   "/proj/" + names[i] + "/main.go",
			Label:  names[i] + "/main.go",
			Source: model.SourceVim,
			Time:   base.Add(-time.Duration(i) * time.Minute),
			Dir:    "/proj/" + names[i],
		})
	}
	return items
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelAssignsStableIndices(t *testing.T) {
	items := testItems(3)
	// shuffle so sorting has something to do
	items[0], items[2] = items[2], items[0]

	m := NewModel(items, "nvim")
	if len(m.items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(m.items))
	}
	// most recent item ("a") must be index 1
	if m.items[0].Index != 1 || !strings.Contains(m.items[0].Path, "/a/") {
		t.Fatalf("expected most recent item first with index 1, got %+v", m.items[0])
	}
	if m.byIndex[3].Path != "/proj/c/main.go" {
		t.Fatalf("index map miswired: %+v", m.byIndex[3])
	}
}

func TestDigitJumpOpensItem(t *testing.T) {
	m := NewModel(testItems(3), "nvim")

	updated, cmd := m.Update(keyRunes("2"))
	got := updated.(Model)
	if cmd == nil {
		t.Fatalf("expected quit command after digit jump")
	}
	if got.OpenCmd() == "" || !strings.Contains(got.OpenCmd(), "/proj/b/main.go") {
		t.Fatalf("expected open command for item 2, got %q", got.OpenCmd())
	}
}

func TestDigitJumpUnknownIndex(t *testing.T) {
	m := NewModel(testItems(3), "nvim")

	updated, _ := m.Update(keyRunes("9"))
	got := updated.(Model)
	if got.OpenCmd() != "" {
		t.Fatalf("expected no selection, got %q", got.OpenCmd())
	}
	if got.status == "" {
		t.Fatalf("expected a status message for unresolvable index")
	}
	if got.quitting {
		t.Fatalf("unresolvable index must not quit the picker")
	}
}

func TestDigitIgnoredWithTenOrMoreItems(t *testing.T) {
	m := NewModel(testItems(10), "nvim")

	updated, _ := m.Update(keyRunes("5"))
	got := updated.(Model)
	if got.OpenCmd() != "" {
		t.Fatalf("digits must not jump with 10+ items, got %q", got.OpenCmd())
	}
}

func TestEnterOpensCursorItem(t *testing.T) {
	m := NewModel(testItems(2), "nvim")

	down, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ := down.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)
	if !strings.Contains(got.OpenCmd(), "/proj/b/main.go") {
		t.Fatalf("expected second item opened, got %q", got.OpenCmd())
	}
}

func TestFilterKeepsOriginalIndices(t *testing.T) {
	m := NewModel(testItems(3), "nvim")

	searching, _ := m.Update(keyRunes("/"))
	typed, _ := searching.(Model).Update(keyRunes("c"))
	got := typed.(Model)

	if len(got.filtered) != 1 {
		t.Fatalf("expected 1 filtered item, got %d", len(got.filtered))
	}
	if got.filtered[0].Index != 3 {
		t.Fatalf("filtering must keep the original index, got %d", got.filtered[0].Index)
	}
}

func TestSearchThenEnterReturnsToList(t *testing.T) {
	m := NewModel(testItems(3), "nvim")

	searching, _ := m.Update(keyRunes("/"))
	done, _ := searching.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := done.(Model)
	if got.mode != modeList {
		t.Fatalf("expected list mode after closing search, got %v", got.mode)
	}
	if got.OpenCmd() != "" {
		t.Fatalf("closing search must not select, got %q", got.OpenCmd())
	}
}

func TestSourceFilterCycle(t *testing.T) {
	items := testItems(2)
	items[1].Source = model.SourceTmux
	m := NewModel(items, "nvim")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := updated.(Model)
	if got.filter != "vim" || len(got.filtered) != 1 {
		t.Fatalf("expected vim-only filter, got %q with %d items", got.filter, len(got.filtered))
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyTab})
	got = updated.(Model)
	if got.filter != "tmux" || len(got.filtered) != 1 {
		t.Fatalf("expected tmux-only filter, got %q with %d items", got.filter, len(got.filtered))
	}
}

func TestPreviewDiscardsStaleResult(t *testing.T) {
	m := NewModel(testItems(2), "nvim")

	entered, _ := m.Update(keyRunes(" "))
	got := entered.(Model)
	if got.mode != modePreview || !got.previewLoading {
		t.Fatalf("expected loading preview mode")
	}

	// a result for some other file must be dropped
	stale, _ := got.Update(previewLoadedMsg{path: "/elsewhere/x.go", lines: []string{"nope"}})
	got = stale.(Model)
	if !got.previewLoading {
		t.Fatalf("stale preview result must be discarded")
	}

	fresh, _ := got.Update(previewLoadedMsg{path: got.previewItem.Path, lines: []string{"package main"}})
	got = fresh.(Model)
	if got.previewLoading || len(got.previewLines) != 1 {
		t.Fatalf("expected preview lines to land")
	}
}

func TestViewShowsIndexedLabels(t *testing.T) {
	m := NewModel(testItems(2), "nvim")
	m.width = 100
	m.height = 20

	view := m.View()
	if !strings.Contains(view, "1: a/main.go") {
		t.Fatalf("view missing indexed label:\n%s", view)
	}
	if !strings.Contains(view, "2: b/main.go") {
		t.Fatalf("view missing second indexed label:\n%s", view)
	}
}
