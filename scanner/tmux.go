package scanner

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bufjump/bufjump/model"
)

var editorCommands = map[string]bool{
	"vi":   true,
	"vim":  true,
	"nvim": true,
	"hx":   true,
	"nano": true,
	"kak":  true,
}

const tmuxFormat = "#{pane_id}\t#{pane_current_command}\t#{pane_current_path}\t#{pane_title}\t#{window_activity}"

// ScanTmux lists files open in editors running inside tmux panes. Editors
// conventionally set the pane title to the file being edited, which is the
// only portable way to see inside a pane. No tmux server means no items,
// not an error.
func ScanTmux() []model.Item {
	out, err := exec.Command("tmux", "list-panes", "-a", "-F", tmuxFormat).Output()
	if err != nil {
		log.Debug("tmux unavailable", "err", err)
		return nil
	}
	return parsePanes(string(out))
}

func parsePanes(out string) []model.Item {
	var items []model.Item

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != 5 {
			continue
		}
		pane, command, cwd, title, activity := fields[0], fields[1], fields[2], fields[3], fields[4]

		if !editorCommands[command] {
			continue
		}
		path, ok := pathFromTitle(title, cwd)
		if !ok {
			continue
		}

		when := time.Time{}
		if secs, err := strconv.ParseInt(activity, 10, 64); err == nil {
			when = time.Unix(secs, 0)
		}

		items = append(items, model.Item{
			Path:   path,
			Source: model.SourceTmux,
			Time:   when,
			Pane:   pane,
			Dir:    cwd,
		})
	}

	return items
}

// pathFromTitle extracts a file path from a pane title. Titles look like
// "main.go", "src/app.go (~/proj) - NVIM", or a bare hostname when the
// editor never set one.
func pathFromTitle(title, cwd string) (string, bool) {
	title = strings.TrimSpace(title)
	if i := strings.IndexAny(title, " —"); i > 0 {
		title = title[:i]
	}
	if title == "" || title == "~" {
		return "", false
	}
	// hostnames and editor banners have no separator and no extension
	if !strings.Contains(title, "/") && filepath.Ext(title) == "" {
		return "", false
	}
	if strings.HasPrefix(title, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, title[2:]), true
		}
		return "", false
	}
	if filepath.IsAbs(title) {
		return filepath.Clean(title), true
	}
	if cwd == "" {
		return "", false
	}
	return filepath.Join(cwd, title), true
}
