// Package settings is the tab visibility panel. It only reads the enabled map and
// reports toggles; the owner decides what a toggle does and whether the panel is open.
package settings

import "searchbar/internal/domain"

// Item is one row of the panel
type Item struct {
	domain.CategoryInfo
	Enabled bool
}

// Items returns one row per toggleable category in display order
func Items(enabled domain.EnabledTabs) []Item {
	items := make([]Item, 0, len(domain.ToggleableCategories))
	for _, c := range domain.ToggleableCategories {
		items = append(items, Item{
			CategoryInfo: c.Info(),
			Enabled:      enabled[c],
		})
	}
	return items
}

// Panel tracks the highlighted row
type Panel struct {
	cursor int
}

// NewPanel returns a panel with the first row highlighted
func NewPanel() *Panel {
	return &Panel{}
}

// Cursor returns the highlighted row index
func (p *Panel) Cursor() int {
	return p.cursor
}

// MoveUp highlights the previous row, stopping at the first one
func (p *Panel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown highlights the next row, stopping at the last one
func (p *Panel) MoveDown() {
	if p.cursor < len(domain.ToggleableCategories)-1 {
		p.cursor++
	}
}

// Reset highlights the first row again
func (p *Panel) Reset() {
	p.cursor = 0
}

// Current returns the category of the highlighted row
func (p *Panel) Current() domain.Category {
	return domain.ToggleableCategories[p.cursor]
}

// Toggle reports the flipped value of the highlighted row to onToggle.
// The enabled map itself is left untouched.
func (p *Panel) Toggle(enabled domain.EnabledTabs, onToggle func(domain.Category, bool)) {
	if onToggle == nil {
		return
	}
	c := p.Current()
	onToggle(c, !enabled[c])
}
