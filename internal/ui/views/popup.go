package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered on top of a greyed out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	popupLines := strings.Split(styledPopup, "\n")

	modalW := lipgloss.Width(styledPopup)
	modalH := len(popupLines)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+modalH {
			out[i] = grey.Render(line)
			continue
		}
		left, right := splitAround(line, x, modalW)
		out[i] = grey.Render(left) + popupLines[i-y] + grey.Render(right)
	}
	return strings.Join(out, "\n")
}

// splitAround returns the plain text left of display column x and right of
// column x+w. A wide character cut by either edge is replaced with spaces so
// the popup always starts at column x.
func splitAround(line string, x, w int) (string, string) {
	total := ansi.StringWidth(line)
	if total <= x {
		return line + strings.Repeat(" ", x-total), ""
	}

	left := ansi.Truncate(line, x, "")
	left += strings.Repeat(" ", x-ansi.StringWidth(left))

	end := x + w
	if total <= end {
		return left, ""
	}
	want := total - end
	right := ansi.TruncateLeft(line, end, "")
	for n := end + 1; ansi.StringWidth(right) > want; n++ {
		right = ansi.TruncateLeft(line, n, "")
	}
	return left, strings.Repeat(" ", want-ansi.StringWidth(right)) + right
}
