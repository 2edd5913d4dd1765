package launcher

import (
	"fmt"
	"os"
	"strings"

	"github.com/bufjump/bufjump/model"
)

// BuildOpenCommand returns the shell command that brings the item into
// view: focusing its tmux pane when it lives in one, otherwise opening the
// file in the configured editor.
func BuildOpenCommand(it model.Item, editor string) string {
	if it.Pane != "" {
		return fmt.Sprintf("tmux switch-client -t %s", shellQuote(it.Pane))
	}
	if editor == "" {
		editor = ResolveEditor("")
	}
	if it.Dir != "" {
		return fmt.Sprintf("cd %s && %s %s", shellQuote(it.Dir), editor, shellQuote(it.Path))
	}
	return fmt.Sprintf("%s %s", editor, shellQuote(it.Path))
}

// ResolveEditor picks the open command: explicit config, then $EDITOR,
// then vi.
func ResolveEditor(configured string) string {
	if configured != "" {
		return configured
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return "vi"
}

func shellQuote(s string) string {
	// wrap in single quotes, escape existing single quotes
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
