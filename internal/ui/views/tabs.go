package views

import (
	"fmt"
	"strings"
	"time"

	"searchbar/internal/session"
)

// TabRenderer handles rendering of the tab bar
type TabRenderer struct {
	styles *Styles
}

// NewTabRenderer creates a new tab renderer
func NewTabRenderer(styles *Styles) *TabRenderer {
	return &TabRenderer{styles: styles}
}

// RenderTabs renders the tab bar. Tabs whose entrance has not started yet are left out.
func (r *TabRenderer) RenderTabs(tabs []session.Tab, motion []Transition, elapsed time.Duration) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		stage := StageShown
		if i < len(motion) {
			stage = motion[i].StageAt(elapsed)
		}
		if stage == StageHidden {
			continue
		}
		parts = append(parts, r.renderTab(tab, stage == StageEntering))
	}
	return strings.Join(parts, " ")
}

func (r *TabRenderer) renderTab(tab session.Tab, entering bool) string {
	label := tab.Label
	if g := Glyph(tab.Icon); g != "" {
		label = g + " " + label
	}
	text := fmt.Sprintf("%s %s", label, r.styles.TabCount.Render(fmt.Sprintf("%d", tab.Count)))

	style := r.styles.Tab
	if tab.Active {
		style = r.styles.ActiveTab
	}
	if entering {
		style = style.Faint(true)
	}
	return style.Render(text)
}
