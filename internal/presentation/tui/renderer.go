package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katahiromz/tristate"
)

// Palette for the three truth values.
const (
	colorTrue    = "#22c55e"
	colorFalse   = "#ef4444"
	colorUnknown = "#eab308"
)

// Renderer formats values for a terminal or a plain stream.
type Renderer struct {
	profile termenv.Profile
	tty     bool
}

// NewRenderer returns a renderer for w.
// color forces styling on (True) or off (False); Unknown enables it only
// when w is a terminal.
func NewRenderer(w io.Writer, color tristate.Value) *Renderer {
	tty := IsTerminal(w)
	enabled := tristate.ToBoolDefault(color, tty)

	profile := termenv.Ascii
	if enabled {
		profile = termenv.EnvColorProfile()
		if profile == termenv.Ascii {
			// Forced color on a stream termenv considers plain.
			profile = termenv.ANSI
		}
	}
	return &Renderer{profile: profile, tty: tty}
}

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Colored reports whether output carries escape sequences.
func (r *Renderer) Colored() bool { return r.profile != termenv.Ascii }

// Value renders v, colored by truthiness.
func (r *Renderer) Value(v tristate.Value) string {
	hex := colorUnknown
	switch {
	case v < 0:
		hex = colorFalse
	case v > 0:
		hex = colorTrue
	}
	return r.profile.String(v.String()).Foreground(r.profile.Color(hex)).String()
}

// Values renders a sequence as space-separated values.
func (r *Renderer) Values(vs []tristate.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = r.Value(v)
	}
	return strings.Join(parts, " ")
}

// Markdown renders markdown through glamour when styling is enabled and
// returns it unchanged otherwise.
func (r *Renderer) Markdown(md string) (string, error) {
	if !r.Colored() {
		return md, nil
	}
	g, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return "", err
	}
	return g.Render(md)
}
