package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"searchbar/internal/ui/input/modes"
	"searchbar/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // query input, shared by the text modes
}

func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search files, people, chats..."
	ti.Prompt = "Search: "
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput, keys)
	h.modes[types.ModeSettings] = modes.NewSettingsMode(keys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}
			h.currentMode = a.Mode
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			allActions = append(allActions, a)
		case types.ClearQueryAction:
			h.textInput.Reset()
			allActions = append(allActions, a)
		default:
			allActions = append(allActions, action)
		}
	}

	// Unhandled keys in a text mode edit the query
	if !consumed && h.isTextMode(h.currentMode) {
		before := h.textInput.Value()
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// TextInput returns the query input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
