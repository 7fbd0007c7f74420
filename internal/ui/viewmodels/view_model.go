package viewmodels

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"searchbar/internal/session"
	"searchbar/internal/settings"
	"searchbar/internal/ui/input/types"
	"searchbar/internal/ui/views"
)

// ViewModel transforms session state into view-ready data
type ViewModel struct {
	width            int
	height           int
	help             help.Model
	keys             types.KeyMap
	showHelp         bool
	spinner          string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(textInput textinput.Model, keys types.KeyMap, showHelp bool) *ViewModel {
	return &ViewModel{
		help:             help.New(),
		keys:             keys,
		showHelp:         showHelp,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// Frame carries the UI-only state that is not part of the session
type Frame struct {
	Cursor         int
	ShowSettings   bool
	SettingsCursor int
	// Elapsed is the time since the skeleton or the result rows appeared
	Elapsed time.Duration
	// PanelElapsed is the time since the settings panel opened
	PanelElapsed time.Duration
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(s session.State, f Frame) views.ViewState {
	tabs := session.Tabs(s)
	results := session.Visible(s)

	copied := -1
	if idx, ok := s.Copied(); ok {
		copied = idx
	}

	state := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Input:          vm.inputTransformer.GetInputText(),
		Spinner:        vm.spinner,
		Loading:        s.IsLoading,
		Expanded:       strings.TrimSpace(s.Query) != "",
		ShowResults:    s.ShowResults,
		Tabs:           tabs,
		TabMotion:      staggered(len(tabs), views.TabTransition),
		Results:        results,
		RowMotion:      staggered(len(results), views.RowTransition),
		Cursor:         f.Cursor,
		Copied:         copied,
		SkeletonMotion: staggered(views.SkeletonRows, views.SkeletonTransition),
		Elapsed:        f.Elapsed,
		ShowSettings:   f.ShowSettings,
		SettingsCursor: f.SettingsCursor,
		PanelMotion:    views.PanelTransition(),
		PanelElapsed:   f.PanelElapsed,
	}

	if f.ShowSettings {
		state.Settings = settings.Items(s.EnabledTabs)
		state.ItemMotion = staggered(len(state.Settings), views.PanelItemTransition)
	}

	if vm.showHelp {
		state.HelpLine = vm.helpLine()
	}

	return state
}

// helpLine prefixes the key hints of the current mode with its name
func (vm *ViewModel) helpLine() string {
	bindings := vm.keys.ShortHelp()
	if vm.inputTransformer.mode == types.ModeSettings {
		bindings = vm.keys.SettingsHelp()
	}
	prefix := vm.inputTransformer.GetInputModeString() + "  "
	if vm.width > 0 {
		vm.help.Width = max(1, vm.width-len(prefix))
	}
	return prefix + vm.help.ShortHelpView(bindings)
}

// AnimationEnd returns when every entrance in the state has finished
func AnimationEnd(state views.ViewState) time.Duration {
	var end time.Duration
	motions := [][]views.Transition{state.TabMotion, state.RowMotion}
	if state.Loading {
		motions = append(motions, state.SkeletonMotion)
	}
	for _, group := range motions {
		for _, t := range group {
			if e := t.End(); e > end {
				end = e
			}
		}
	}
	return end
}

// PanelAnimationEnd returns when the settings panel entrance has finished
func PanelAnimationEnd(state views.ViewState) time.Duration {
	end := state.PanelMotion.End()
	for _, t := range state.ItemMotion {
		if e := t.End(); e > end {
			end = e
		}
	}
	return end
}

func staggered(n int, at func(int) views.Transition) []views.Transition {
	out := make([]views.Transition, n)
	for i := range out {
		out[i] = at(i)
	}
	return out
}

var _ help.KeyMap = types.KeyMap{}
