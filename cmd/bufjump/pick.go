package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bufjump/bufjump/config"
	"github.com/bufjump/bufjump/launcher"
	"github.com/bufjump/bufjump/model"
	"github.com/bufjump/bufjump/pathlabel"
	"github.com/bufjump/bufjump/scanner"
	"github.com/bufjump/bufjump/tui"
)

func runPicker(cfg *config.Config) error {
	items := collectItems(cfg)
	if len(items) == 0 {
		fmt.Println("No open files found.")
		return nil
	}

	m := tui.NewModel(items, launcher.ResolveEditor(cfg.Editor))
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	// after the TUI exits, check if we need to open something
	finalModel := result.(tui.Model)
	cmd := finalModel.OpenCmd()
	if cmd == "" {
		return nil
	}

	shell := "/bin/bash"
	if runtime.GOOS == "darwin" {
		if zsh, err := exec.LookPath("zsh"); err == nil {
			shell = zsh
		}
	}

	execCmd := exec.Command(shell, "-c", cmd)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	if err := execCmd.Run(); err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	return nil
}

// collectItems scans all sources concurrently, drops duplicate paths and
// attaches the disambiguated label to every surviving item.
func collectItems(cfg *config.Config) []model.Item {
	vimCh := make(chan []model.Item)
	tmuxCh := make(chan []model.Item)

	go func() { vimCh <- scanner.ScanVim(cfg.ExpandedSwapDirs()) }()
	go func() {
		if cfg.TmuxEnabled() {
			tmuxCh <- scanner.ScanTmux()
		} else {
			tmuxCh <- nil
		}
	}()

	var all []model.Item
	all = append(all, <-vimCh...)
	all = append(all, <-tmuxCh...)

	// most recent first, so dedupe keeps the freshest source of each path
	sort.Slice(all, func(i, j int) bool {
		return all[i].Time.After(all[j].Time)
	})

	seen := make(map[string]bool, len(all))
	items := all[:0]
	for _, it := range all {
		if seen[it.Path] {
			continue
		}
		seen[it.Path] = true
		items = append(items, it)
	}

	paths := make([]string, len(items))
	for i, it := range items {
		paths[i] = it.Path
	}
	labels := pathlabel.Disambiguate(paths)
	for i := range items {
		items[i].Label = labels[items[i].Path]
	}

	return items
}
