package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bufjump/bufjump/model"
	"github.com/bufjump/bufjump/scanner"
)

// previewLoadedMsg is sent when async file reading completes.
type previewLoadedMsg struct {
	path  string // identifies which item this result belongs to
	lines []string
}

func loadPreview(it model.Item) tea.Cmd {
	path := it.Path
	return func() tea.Msg {
		return previewLoadedMsg{path: path, lines: scanner.Preview(path)}
	}
}

func (m Model) enterPreview() (Model, tea.Cmd) {
	if len(m.filtered) == 0 {
		return m, nil
	}
	m.previewItem = m.filtered[m.cursor]
	m.previewLines = nil
	m.previewOffset = 0
	m.previewLoading = true
	m.mode = modePreview
	return m, loadPreview(m.previewItem)
}

func (m Model) updatePreviewLoaded(path string, lines []string) Model {
	// discard stale result if the user already moved to another item
	if path != m.previewItem.Path {
		return m
	}
	m.previewLines = lines
	m.previewLoading = false
	return m
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", " ":
		m.mode = modeList
		return m, nil

	case "enter":
		return m.open(m.previewItem)

	case "up", "k":
		if m.previewOffset > 0 {
			m.previewOffset--
		}

	case "down", "j":
		if m.previewOffset < max(0, len(m.previewLines)-m.previewRows()) {
			m.previewOffset++
		}

	case "pgup":
		m.previewOffset -= m.previewRows()
		if m.previewOffset < 0 {
			m.previewOffset = 0
		}

	case "pgdown":
		m.previewOffset += m.previewRows()
		if limit := max(0, len(m.previewLines)-m.previewRows()); m.previewOffset > limit {
			m.previewOffset = limit
		}

	case "g":
		m.previewOffset = 0

	case "G":
		m.previewOffset = max(0, len(m.previewLines)-m.previewRows())
	}

	return m, nil
}

func (m Model) viewPreview() string {
	var b strings.Builder

	title := fmt.Sprintf("%d: %s", m.previewItem.Index, m.previewItem.Label)
	b.WriteString(previewTitleStyle.Render(title) + dimStyle.Render("  "+m.previewItem.Path) + "\n")

	rows := m.previewRows()
	if m.previewLoading {
		b.WriteString(dimStyle.Render("loading...") + "\n")
		rows--
	} else {
		end := m.previewOffset + rows
		if end > len(m.previewLines) {
			end = len(m.previewLines)
		}
		for i := m.previewOffset; i < end; i++ {
			line := m.previewLines[i]
			runes := []rune(line)
			if len(runes) > m.width {
				line = string(runes[:m.width])
			}
			b.WriteString(line + "\n")
		}
		rows -= end - m.previewOffset
	}

	for i := 0; i < rows; i++ {
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("  Enter: open  j/k: scroll  Esc: back"))
	return b.String()
}

func (m Model) previewRows() int {
	rows := m.height - 2 // title and bottom bar
	if rows < 1 {
		rows = 1
	}
	return rows
}
