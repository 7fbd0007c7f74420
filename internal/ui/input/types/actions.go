package types

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type CycleTabAction struct {
	Offset int // +1 next, -1 previous
}

func (a CycleTabAction) Type() string { return "cycle_tab" }

// Result actions
type CopyLinkAction struct {
	Index int
}

func (a CopyLinkAction) Type() string { return "copy_link" }

type OpenResultAction struct {
	Index int
}

func (a OpenResultAction) Type() string { return "open_result" }

// Settings actions
type ToggleTabAction struct{}

func (a ToggleTabAction) Type() string { return "toggle_tab" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
