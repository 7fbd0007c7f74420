package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchbar/internal/domain"
	"searchbar/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

var helpSections = []string{"Tabs & Results", "Result Actions", "Settings", "Other"}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Searchbar Help"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("Type to search. Results appear after a short delay."))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), descStyle.Render(h.Desc)))
		}
	}

	help.WriteString(sectionStyle.Render("Tabs"))
	help.WriteString("\n")
	for _, c := range domain.Categories {
		info := c.Info()
		var kinds string
		switch c {
		case domain.CategoryAll:
			kinds = "every result"
		case domain.CategoryFiles:
			kinds = "files, images and videos"
		default:
			kinds = string(c) + " results"
		}
		help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", info.Label)), descStyle.Render(kinds)))
	}

	return help.String()
}
