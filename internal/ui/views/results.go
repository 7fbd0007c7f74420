package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"searchbar/internal/domain"
)

// ResultRowState carries the per-row flags of a result line
type ResultRowState struct {
	Selected bool
	Copied   bool
	Entering bool
	Width    int
}

// ResultRenderer handles rendering of result rows
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{styles: styles}
}

// RenderResult renders one result as a single line:
// icon, title, subtitle and, for linkable records, the action hints on the right
func (r *ResultRenderer) RenderResult(rec domain.ResultRecord, row ResultRowState) string {
	bg := lipgloss.NewStyle()
	if row.Selected {
		bg = r.styles.SelectionBg
	}

	icon := Glyph(string(rec.Type))
	if rec.Type == domain.TypePerson {
		icon += r.styles.PresenceStyle(rec.Presence()).Inherit(bg).Render("●")
	} else {
		icon += " "
	}

	left := []string{
		bg.Render(" " + icon + " "),
		r.styles.ResultTitle.Inherit(bg).Render(rec.Title),
	}
	if rec.Subtitle != "" {
		left = append(left, r.styles.ResultSubtle.Inherit(bg).Render("  "+rec.Subtitle))
	}
	leftText := strings.Join(left, "")

	right := ""
	switch {
	case row.Copied:
		right = r.styles.Copied.Inherit(bg).Render("Link copied!")
	case rec.HasLinkActions() && row.Selected:
		right = r.styles.Actions.Inherit(bg).Render("⧉ copy  ↗ New Tab")
	}

	line := leftText
	if right != "" {
		gap := row.Width - lipgloss.Width(leftText) - lipgloss.Width(right) - 1
		if gap < 2 {
			gap = 2
		}
		line = leftText + bg.Render(strings.Repeat(" ", gap)) + right + bg.Render(" ")
	} else if row.Selected {
		if pad := row.Width - lipgloss.Width(leftText); pad > 0 {
			line += bg.Render(strings.Repeat(" ", pad))
		}
	}

	if row.Entering {
		return r.styles.Dim.Render(line)
	}
	return line
}
