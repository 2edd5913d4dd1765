package scanner

import (
	"bufio"
	"os"
	"strings"
)

const maxPreviewLines = 400

// Preview reads the first lines of a file for the preview pane. Errors
// degrade to a single message line so the TUI never has to special-case
// unreadable files.
func Preview(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{"cannot read " + path}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 256*1024), 256*1024)
	for sc.Scan() && len(lines) < maxPreviewLines {
		line := strings.ReplaceAll(sc.Text(), "\t", "    ")
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = []string{"(empty file)"}
	}
	return lines
}
