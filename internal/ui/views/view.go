package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"searchbar/internal/domain"
	"searchbar/internal/session"
	"searchbar/internal/settings"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Input   string // rendered query input
	Spinner string // rendered spinner frame, shown while loading
	Loading bool
	// Expanded is true while the query is non-blank; tabs and the result area only show then
	Expanded    bool
	ShowResults bool

	Tabs      []session.Tab
	TabMotion []Transition

	Results   []domain.ResultRecord
	RowMotion []Transition
	Cursor    int
	Copied    int // index of the row showing "Link copied!", -1 for none

	SkeletonMotion []Transition

	// Elapsed is the time since the current result area (skeleton or rows) appeared
	Elapsed time.Duration

	ShowSettings   bool
	Settings       []settings.Item
	SettingsCursor int
	PanelMotion    Transition
	ItemMotion     []Transition
	PanelElapsed   time.Duration

	HelpLine string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	tabRender   *TabRenderer
	rowRender   *ResultRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		tabRender:   NewTabRenderer(styles),
		rowRender:   NewResultRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}
	innerWidth := width - 4 // main container padding

	content := &strings.Builder{}

	content.WriteString(r.renderSearchBox(state, innerWidth))
	content.WriteString("\n")

	if state.Expanded {
		content.WriteString(r.tabRender.RenderTabs(state.Tabs, state.TabMotion, state.Elapsed))
		content.WriteString("\n\n")

		// search box (3) + tabs (2) + help (2) + padding (2)
		rows := height - 9
		if rows < 1 {
			rows = 1
		}

		switch {
		case state.Loading:
			content.WriteString(r.renderSkeleton(state, innerWidth, rows))
		case state.ShowResults:
			content.WriteString(r.renderResults(state, innerWidth, rows))
		}
	}

	helpLine := ""
	if state.HelpLine != "" {
		helpLine = r.styles.Help.Render(state.HelpLine)
	}

	if helpLine != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		paddingNeeded := height - 2 - currentLines - lipgloss.Height(helpLine)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString(helpLine)
	}

	finalContent := r.styles.Main.MaxHeight(height).Render(content.String())

	if state.ShowSettings {
		panel := r.renderSettings(state)
		return r.popupRender.RenderPopupOverlay(finalContent, panel, height, width, r.styles.SettingsBox)
	}

	return finalContent
}

func (r *Renderer) renderSearchBox(state ViewState, width int) string {
	icon := "⌕"
	if state.Loading && state.Spinner != "" {
		icon = state.Spinner
	}
	line := fmt.Sprintf("%s %s", r.styles.Spinner.Render(icon), state.Input)
	return r.styles.SearchBox.Width(width - 2).Render(line)
}

func (r *Renderer) renderSkeleton(state ViewState, width, rows int) string {
	n := len(state.SkeletonMotion)
	if n > rows {
		n = rows
	}
	bar := strings.Repeat("░", max(width/2, 8))
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch state.SkeletonMotion[i].StageAt(state.Elapsed) {
		case StageHidden:
			lines = append(lines, "")
		case StageEntering:
			lines = append(lines, r.styles.Dim.Render(r.styles.Skeleton.Render("  "+bar)))
		default:
			lines = append(lines, r.styles.Skeleton.Render("  "+bar))
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderResults(state ViewState, width, rows int) string {
	if len(state.Results) == 0 {
		return r.styles.Dim.Render("No results")
	}

	offset := 0
	if state.Cursor >= rows {
		offset = state.Cursor - rows + 1
	}
	end := offset + rows
	if end > len(state.Results) {
		end = len(state.Results)
	}

	lines := make([]string, 0, end-offset+1)
	if offset > 0 {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("↑ %d more above", offset)))
	}
	for i := offset; i < end; i++ {
		stage := StageShown
		if i < len(state.RowMotion) {
			stage = state.RowMotion[i].StageAt(state.Elapsed)
		}
		if stage == StageHidden {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, r.rowRender.RenderResult(state.Results[i], ResultRowState{
			Selected: i == state.Cursor,
			Copied:   i == state.Copied,
			Entering: stage == StageEntering,
			Width:    width,
		}))
	}
	if below := len(state.Results) - end; below > 0 {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("↓ %d more below", below)))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderSettings(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.SettingsTitle.Render("Tabs"))
	b.WriteString("\n")

	for i, item := range state.Settings {
		if i < len(state.ItemMotion) && state.ItemMotion[i].StageAt(state.PanelElapsed) == StageHidden {
			b.WriteString("\n")
			continue
		}
		cursor := "  "
		if i == state.SettingsCursor {
			cursor = "› "
		}
		sw := r.styles.SwitchOff.Render("○ off")
		if item.Enabled {
			sw = r.styles.SwitchOn.Render("● on ")
		}
		label := fmt.Sprintf("%s %-8s", Glyph(item.Icon), item.Label)
		b.WriteString(fmt.Sprintf("%s%s %s", cursor, label, sw))
		if i < len(state.Settings)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
