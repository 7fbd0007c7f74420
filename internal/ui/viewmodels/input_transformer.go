package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"searchbar/internal/ui/input/types"
)

// InputTransformer turns the input mode and query field into view text
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeSearch,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the rendered query field
func (it *InputTransformer) GetInputText() string {
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	return it.mode.String()
}
