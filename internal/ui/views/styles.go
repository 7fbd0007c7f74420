package views

import (
	"github.com/charmbracelet/lipgloss"

	"searchbar/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	SearchBox     lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	TabCount      lipgloss.Style
	ResultTitle   lipgloss.Style
	ResultSubtle  lipgloss.Style
	SelectionBg   lipgloss.Style
	Actions       lipgloss.Style
	Copied        lipgloss.Style
	Skeleton      lipgloss.Style
	SettingsBox   lipgloss.Style
	SettingsTitle lipgloss.Style
	SwitchOn      lipgloss.Style
	SwitchOff     lipgloss.Style
	StatusActive  lipgloss.Style
	StatusAway    lipgloss.Style
	StatusOff     lipgloss.Style
	Spinner       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Dim:  lipgloss.NewStyle().Faint(true),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabCount:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ResultTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ResultSubtle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SelectionBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Actions:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Copied:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Skeleton:     lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		SettingsBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SettingsTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		SwitchOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		SwitchOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusAway:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Spinner:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
}

// PresenceStyle returns the status dot style for a person's presence
func (s *Styles) PresenceStyle(p domain.Presence) lipgloss.Style {
	switch p {
	case domain.PresenceActive:
		return s.StatusActive
	case domain.PresenceInactive:
		return s.StatusOff
	default:
		return s.StatusAway
	}
}

// Glyph maps an opaque icon reference or record type to a terminal glyph
func Glyph(ref string) string {
	switch ref {
	case "file-icon", string(domain.TypeFile):
		return "▤"
	case string(domain.TypeImage):
		return "▨"
	case string(domain.TypeVideo):
		return "▶"
	case "person-icon", string(domain.TypePerson):
		return "☺"
	case "chat":
		return "✉"
	case "list":
		return "☰"
	default:
		return ""
	}
}
