package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bufjump/bufjump/launcher"
	"github.com/bufjump/bufjump/model"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modePreview
)

type Model struct {
	items       []model.Item
	byIndex     map[int]model.Item
	filtered    []model.Item
	cursor      int
	offset      int // scroll offset
	width       int
	height      int
	mode        mode
	searchInput textinput.Model
	filter      string // "all", "vim", "tmux"
	editor      string
	status      string // transient error line
	openCmd     string // final command to execute
	quitting    bool

	// preview state
	previewItem    model.Item
	previewLines   []string
	previewOffset  int
	previewLoading bool
}

// NewModel indexes items most-recent-first; the 1-based index assigned here
// is what digit jumps refer to, and it never changes while filtering.
func NewModel(items []model.Item, editor string) Model {
	sort.Slice(items, func(i, j int) bool {
		return items[i].Time.After(items[j].Time)
	})

	byIndex := make(map[int]model.Item, len(items))
	for i := range items {
		items[i].Index = i + 1
		byIndex[items[i].Index] = items[i]
	}

	si := textinput.New()
	si.Placeholder = "filter..."
	si.CharLimit = 100

	m := Model{
		items:       items,
		byIndex:     byIndex,
		filter:      "all",
		editor:      editor,
		searchInput: si,
		width:       120,
		height:      30,
	}
	m.applyFilter()
	return m
}

func (m *Model) applyFilter() {
	m.filtered = nil
	search := strings.ToLower(m.searchInput.Value())

	for _, it := range m.items {
		// source filter
		switch m.filter {
		case "vim":
			if it.Source != model.SourceVim {
				continue
			}
		case "tmux":
			if it.Source != model.SourceTmux {
				continue
			}
		}

		// text search over label and full path
		if search != "" {
			haystack := strings.ToLower(it.Label + " " + it.Path)
			if !strings.Contains(haystack, search) {
				continue
			}
		}

		m.filtered = append(m.filtered, it)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		return m, nil

	case previewLoadedMsg:
		return m.updatePreviewLoaded(msg.path, msg.lines), nil

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modePreview:
			return m.updatePreview(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// direct index jump, only while few enough items that a single digit
	// is unambiguous
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && len(m.items) < 10 {
		return m.jumpTo(int(key[0] - '0'))
	}

	switch key {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "pgup":
		visible := m.visibleRows()
		m.cursor -= visible
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampOffset()

	case "pgdown":
		visible := m.visibleRows()
		m.cursor += visible
		if m.cursor >= len(m.filtered) {
			m.cursor = len(m.filtered) - 1
		}
		m.clampOffset()

	case "enter":
		if len(m.filtered) > 0 {
			return m.open(m.filtered[m.cursor])
		}

	case " ":
		return m.enterPreview()

	case "/":
		m.status = ""
		m.searchInput.Focus()
		m.mode = modeSearch

	case "tab":
		switch m.filter {
		case "all":
			m.filter = "vim"
		case "vim":
			m.filter = "tmux"
		case "tmux":
			m.filter = "all"
		}
		m.applyFilter()
	}

	return m, nil
}

func (m Model) jumpTo(index int) (tea.Model, tea.Cmd) {
	it, ok := m.byIndex[index]
	if !ok {
		m.status = fmt.Sprintf("no open file with index %d", index)
		return m, nil
	}
	return m.open(it)
}

func (m Model) open(it model.Item) (tea.Model, tea.Cmd) {
	m.openCmd = launcher.BuildOpenCommand(it, m.editor)
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modePreview {
		return m.viewPreview()
	}

	var b strings.Builder

	title := titleStyle.Render("bufjump")
	filterInfo := dimStyle.Render(fmt.Sprintf("  [%s]  %d open files", m.filter, len(m.filtered)))
	b.WriteString(title + filterInfo + "\n")

	b.WriteString(m.renderHeader() + "\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		it := m.filtered[i]
		b.WriteString(m.renderRow(it, i == m.cursor) + "\n")
	}

	// pad remaining rows
	rendered := end - m.offset
	for i := rendered; i < visible; i++ {
		b.WriteString("\n")
	}

	switch m.mode {
	case modeSearch:
		b.WriteString(statusBarStyle.Render("Filter: ") + m.searchInput.View())
	default:
		if m.status != "" {
			b.WriteString(errorStyle.Render("  " + m.status))
		} else {
			b.WriteString(m.renderHelp())
		}
	}

	return b.String()
}

func (m Model) renderHeader() string {
	w := m.colWidths()
	cols := []string{
		pad("#: File", w.label),
		pad("Source", w.source),
		pad("Time", w.time),
		"Path",
	}
	return headerStyle.Render(strings.Join(cols, " "))
}

func (m Model) renderRow(it model.Item, selected bool) string {
	w := m.colWidths()

	labelStr := fmt.Sprintf("%d: %s", it.Index, it.Label)

	var sourceStr string
	switch it.Source {
	case model.SourceVim:
		sourceStr = vimTag.Render(pad("Vim", w.source))
	case model.SourceTmux:
		sourceStr = tmuxTag.Render(pad("Tmux", w.source))
	}

	timeStr := ""
	if !it.Time.IsZero() {
		timeStr = it.Time.Format("01-02 15:04")
	}

	pathStr := it.Path
	pathRunes := []rune(pathStr)
	if len(pathRunes) > w.path {
		pathStr = ".." + string(pathRunes[len(pathRunes)-w.path+2:])
	}

	cols := []string{
		pad(labelStr, w.label),
		sourceStr,
		pad(timeStr, w.time),
		dimStyle.Render(pathStr),
	}

	row := strings.Join(cols, " ")

	if selected {
		// re-render with selected style, stripping existing styles
		plainCols := []string{
			pad(labelStr, w.label),
			pad(string(it.Source), w.source),
			pad(timeStr, w.time),
			pathStr,
		}
		row = selectedStyle.Render(strings.Join(plainCols, " "))
		row = lipgloss.PlaceHorizontal(m.width, lipgloss.Left, row)
	}

	return row
}

func (m Model) renderHelp() string {
	jump := ""
	if len(m.items) < 10 {
		jump = "1-9: jump  "
	}
	return helpStyle.Render("  " + jump + "Enter: open  Space: preview  /: filter  Tab: source  q: quit")
}

type colWidths struct {
	label  int
	source int
	time   int
	path   int
}

func (m Model) colWidths() colWidths {
	w := colWidths{
		label:  34,
		source: 6,
		time:   12,
	}
	// full path gets remaining width
	used := w.label + w.source + w.time + 5 // separators and padding
	w.path = m.width - used
	if w.path < 16 {
		w.path = 16
	}
	return w
}

func (m Model) visibleRows() int {
	// total height minus title, header, bottom bar
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// OpenCmd returns the command to execute after the TUI exits, empty when
// the user quit without selecting anything.
func (m Model) OpenCmd() string {
	return m.openCmd
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
