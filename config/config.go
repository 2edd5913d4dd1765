package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bufjump/bufjump/scanner"
)

// Config controls which sources are scanned and how files are opened.
type Config struct {
	Editor   string   `yaml:"editor"`
	Tmux     *bool    `yaml:"tmux"`
	SwapDirs []string `yaml:"swap_dirs"`
	LogFile  string   `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		SwapDirs: scanner.DefaultSwapDirs(),
	}
}

// DefaultPath returns ~/.config/bufjump/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "bufjump", "config.yaml")
}

// TmuxEnabled reports whether tmux panes should be scanned; the zero value
// means enabled.
func (c *Config) TmuxEnabled() bool {
	return c.Tmux == nil || *c.Tmux
}

// ExpandedSwapDirs returns swap_dirs with ~ expanded, falling back to the
// built-in defaults when none are configured.
func (c *Config) ExpandedSwapDirs() []string {
	if len(c.SwapDirs) == 0 {
		return scanner.DefaultSwapDirs()
	}
	dirs := make([]string, 0, len(c.SwapDirs))
	for _, d := range c.SwapDirs {
		dirs = append(dirs, expandHome(d))
	}
	return dirs
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
