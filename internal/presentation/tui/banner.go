package tui

import (
	"fmt"
	"io"
	"strings"
)

// PrintBanner writes the ASCII art banner followed by the version.
func (r *Renderer) PrintBanner(w io.Writer, version string) {
	lines := []struct {
		text, hex string
	}{
		{"  _        _     _        _       ", "#22c55e"},
		{" | |_ _ __(_)___| |_ __ _| |_ ___ ", "#84cc16"},
		{" | __| '__| / __| __/ _` | __/ _ \\", "#eab308"},
		{" | |_| |  | \\__ \\ || (_| | ||  __/", "#f97316"},
		{"  \\__|_|  |_|___/\\__\\__,_|\\__\\___|", "#ef4444"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, r.profile.String(l.text).Foreground(r.profile.Color(l.hex)))
	}
	fmt.Fprintf(w, "\n  version %s\n\n", strings.TrimSpace(version))
}
