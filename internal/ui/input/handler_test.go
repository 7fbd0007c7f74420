package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchbar/internal/domain"
	"searchbar/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func results() ResultsContext {
	return ResultsContext{
		Results: []domain.ResultRecord{
			{Type: domain.TypeFile, Title: "a.pdf"},
			{Type: domain.TypePerson, Title: "Ann"},
		},
	}
}

func TestTypingUpdatesQuery(t *testing.T) {
	h := New(types.DefaultKeyMap())

	actions, _ := h.HandleKey(runes("r"), results())
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "r"}, actions[0])

	actions, _ = h.HandleKey(runes("e"), results())
	assert.Equal(t, types.UpdateTextAction{Text: "re"}, actions[0])
	assert.Equal(t, "re", h.TextInput().Value())
}

func TestCursorKeysDoNotEmitUpdate(t *testing.T) {
	h := New(types.DefaultKeyMap())
	h.HandleKey(runes("ab"), results())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyLeft}, results())
	assert.Empty(t, actions)
}

func TestEscClearsInput(t *testing.T) {
	h := New(types.DefaultKeyMap())
	h.HandleKey(runes("abc"), results())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, results())
	require.Len(t, actions, 1)
	assert.IsType(t, types.ClearQueryAction{}, actions[0])
	assert.Empty(t, h.TextInput().Value())
}

func TestSearchModeBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, types.CycleTabAction{Offset: 1}},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, types.CycleTabAction{Offset: -1}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Direction: "down"}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlY}, types.CopyLinkAction{Index: 0}},
		{"open", tea.KeyMsg{Type: tea.KeyEnter}, types.OpenResultAction{Index: 0}},
		{"help", tea.KeyMsg{Type: tea.KeyF1}, types.ShowHelpAction{}},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(types.DefaultKeyMap())
			actions, _ := h.HandleKey(tt.msg, results())
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestCopyLinkSkipsPeople(t *testing.T) {
	h := New(types.DefaultKeyMap())
	ctx := results()
	ctx.Cursor = 1

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlY}, ctx)
	assert.Empty(t, actions)
}

func TestOpenWithoutResults(t *testing.T) {
	h := New(types.DefaultKeyMap())
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ResultsContext{})
	assert.Empty(t, actions)
}

func TestSettingsModeRoundTrip(t *testing.T) {
	h := New(types.DefaultKeyMap())
	h.HandleKey(runes("q"), results())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlT}, results())
	require.Len(t, actions, 1)
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeSettings}, actions[0])
	assert.Equal(t, types.ModeSettings, h.CurrentMode())

	// typing is swallowed while the panel is open
	actions, _ = h.HandleKey(runes("x"), results())
	assert.Empty(t, actions)
	assert.Equal(t, "q", h.TextInput().Value())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, results())
	require.Len(t, actions, 1)
	assert.IsType(t, types.ToggleTabAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, results())
	assert.Equal(t, types.NavigateAction{Direction: "down"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, results())
	require.Len(t, actions, 1)
	assert.Equal(t, types.ChangeModeAction{Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "q", h.TextInput().Value(), "closing settings keeps the query")
}

func TestResultsContextBounds(t *testing.T) {
	ctx := ResultsContext{Cursor: 3}
	assert.False(t, ctx.CanCopyCurrent())
	assert.Zero(t, ctx.ResultCount())
}
