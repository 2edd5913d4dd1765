package model

import "time"

type Source string

const (
	SourceVim  Source = "Vim"
	SourceTmux Source = "Tmux"
)

// Item is one file currently open in some editor session.
type Item struct {
	Path   string // absolute file path
	Index  int    // 1-based, assigned after sorting, stable under filtering
	Label  string // shortest unique trailing suffix of Path
	Source Source
	Time   time.Time // last activity, used for sort order
	Pane   string    // tmux pane id, only for SourceTmux
	Dir    string    // working directory for relative opens
}
