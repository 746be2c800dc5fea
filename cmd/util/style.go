package util

import "github.com/charmbracelet/lipgloss"

// The terminal palette: group names in green, local members in yellow,
// remote members and paths in blue, error prefixes in red. lipgloss
// degrades these to plain text when stdout isn't a terminal.
var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	localStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	remoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Name renders a group name.
func Name(s string) string {
	return nameStyle.Render(s)
}

// Local renders a local member path.
func Local(s string) string {
	return localStyle.Render(s)
}

// Remote renders a host:path member.
func Remote(s string) string {
	return remoteStyle.Render(s)
}

// Path renders a directory or location query.
func Path(s string) string {
	return remoteStyle.Render(s)
}

// Member renders a member according to its category.
func Member(s string, remote bool) string {
	if remote {
		return Remote(s)
	}
	return Local(s)
}

// ErrorPrefix renders the prefix used for fatal messages.
func ErrorPrefix() string {
	return errorStyle.Render("error:")
}
