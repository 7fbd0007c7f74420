package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/types"
)

// SearchMode is the default mode: typing edits the query and the
// bound keys drive tabs and results
type SearchMode struct {
	TextInputMode
	keys types.KeyMap
}

func NewSearchMode(ti *textinput.Model, keys types.KeyMap) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
		keys:          keys,
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearQueryAction{}}, true

	case key.Matches(msg, m.keys.NextTab):
		return []types.Action{types.CycleTabAction{Offset: 1}}, true

	case key.Matches(msg, m.keys.PrevTab):
		return []types.Action{types.CycleTabAction{Offset: -1}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.CopyLink):
		if ctx.CanCopyCurrent() {
			return []types.Action{types.CopyLinkAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Open):
		if ctx.ResultCount() > 0 {
			return []types.Action{types.OpenResultAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Settings):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSettings}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
