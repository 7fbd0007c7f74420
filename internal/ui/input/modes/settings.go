package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/types"
)

// SettingsMode drives the tab visibility panel. Keys it does not know are swallowed.
type SettingsMode struct {
	keys types.KeyMap
}

func NewSettingsMode(keys types.KeyMap) *SettingsMode {
	return &SettingsMode{keys: keys}
}

func (m *SettingsMode) Name() string {
	return "settings"
}

func (m *SettingsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SettingsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.CloseOverlay):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, m.keys.Toggle):
		return []types.Action{types.ToggleTabAction{}}, true
	}
	return nil, true
}
