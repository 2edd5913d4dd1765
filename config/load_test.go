package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), false)
	require.NoError(t, err)
	require.True(t, cfg.TmuxEnabled())
	require.Empty(t, cfg.Editor)
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.yaml"), true)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "editor: hx\ntmux: false\nswap_dirs:\n  - /tmp/swap\nlog_file: /tmp/bufjump.log\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "hx", cfg.Editor)
	require.False(t, cfg.TmuxEnabled())
	require.Equal(t, []string{"/tmp/swap"}, cfg.ExpandedSwapDirs())
	require.Equal(t, "/tmp/bufjump.log", cfg.LogFile)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unclosed"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
}

func TestExpandedSwapDirsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := &Config{SwapDirs: []string{"~/.local/state/nvim/swap", "/var/swap"}}
	dirs := cfg.ExpandedSwapDirs()
	require.Equal(t, filepath.Join(home, ".local/state/nvim/swap"), dirs[0])
	require.Equal(t, "/var/swap", dirs[1])
}

func TestExpandedSwapDirsDefaults(t *testing.T) {
	cfg := &Config{}
	require.NotEmpty(t, cfg.ExpandedSwapDirs())
}
