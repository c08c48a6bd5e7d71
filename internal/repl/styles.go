package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#8B5CF6")
	accentColor  = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	borderColor  = lipgloss.Color("#06B6D4")
	mutedColor   = lipgloss.Color("#94A3B8")
)

// styles are bound to the session's writer, so output that is not a
// terminal gets plain text.
type styles struct {
	prompt  lipgloss.Style
	banner  lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		prompt: r.NewStyle().
			Foreground(primaryColor).
			Bold(true),

		banner: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),

		err: r.NewStyle().
			Foreground(errorColor).
			Bold(true),

		success: r.NewStyle().
			Foreground(accentColor),

		muted: r.NewStyle().
			Foreground(mutedColor),
	}
}
