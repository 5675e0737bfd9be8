package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/spawn/internal/domain"
)

// Colors used in listings.
var (
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorMuted   = lipgloss.Color("#9CA3AF") // Light gray
	colorWarning = lipgloss.Color("#F59E0B") // Amber
)

// listStyles holds the styles for tabular output.
type listStyles struct {
	Running lipgloss.Style
	Gone    lipgloss.Style
	Unknown lipgloss.Style
	Muted   lipgloss.Style
}

// newListStyles returns styles bound to w.
// Colors are dropped automatically when w is not a terminal.
func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)
	return listStyles{
		Running: r.NewStyle().Foreground(colorSuccess).Bold(true),
		Gone:    r.NewStyle().Foreground(colorMuted),
		Unknown: r.NewStyle().Foreground(colorWarning),
		Muted:   r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// state renders a liveness state.
func (s listStyles) state(st domain.ProcessState) string {
	switch st {
	case domain.ProcessRunning:
		return s.Running.Render(string(st))
	case domain.ProcessGone:
		return s.Gone.Render(string(st))
	default:
		return s.Unknown.Render(string(st))
	}
}
