package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bufjump/bufjump/model"
)

// DefaultSwapDirs returns the centralized swap directories used by nvim and
// vim when configured with a double-slash 'directory' option.
func DefaultSwapDirs() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dirs := []string{
		filepath.Join(homeDir, ".local", "state", "nvim", "swap"),
		filepath.Join(homeDir, ".vim", "swap"),
	}
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		dirs[0] = filepath.Join(state, "nvim", "swap")
	}
	return dirs
}

// ScanVim lists the files currently open in vim/nvim sessions by reading
// centralized swap directories. Swap file names percent-encode the full
// path of the open buffer, so no swap file contents are parsed.
func ScanVim(dirs []string) []model.Item {
	var items []model.Item

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // dir absent: no sessions from this editor
		}

		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path, ok := decodeSwapName(e.Name())
			if !ok {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			items = append(items, model.Item{
				Path:   path,
				Source: model.SourceVim,
				Time:   info.ModTime(),
				Dir:    filepath.Dir(path),
			})
			log.Debug("swap file", "dir", dir, "path", path)
		}
	}

	return items
}

// decodeSwapName turns a centralized swap file name like
// "%home%user%proj%main.go.swp" back into the buffer's full path.
func decodeSwapName(name string) (string, bool) {
	ext := filepath.Ext(name)
	// vim cycles .swp, .swo, .swn, ... for multiple swaps of the same file
	if len(ext) != 4 || !strings.HasPrefix(ext, ".sw") {
		return "", false
	}
	stem := strings.TrimSuffix(name, ext)
	if !strings.HasPrefix(stem, "%") {
		return "", false
	}
	path := strings.ReplaceAll(stem, "%", "/")
	if !filepath.IsAbs(path) {
		return "", false
	}
	return path, true
}
