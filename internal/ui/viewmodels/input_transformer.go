package viewmodels

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"pixels/internal/ui/input/types"
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetSearchInput returns what the search bar shows: the live input while
// focused, otherwise the committed search text or a hint
func (it *InputTransformer) GetSearchInput(searchText string) string {
	if it.mode == types.ModeSearch {
		return it.textInput.View()
	}
	if searchText == "" {
		return "press / to search"
	}
	return searchText
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case types.ModeWelcome:
		return "welcome"
	case types.ModeSearch:
		return "search"
	case types.ModeFilters:
		return "filters"
	case types.ModeDetail:
		return "detail"
	default:
		return "normal"
	}
}

// KeyBindings returns the footer bindings for the current mode
func (it *InputTransformer) KeyBindings() []key.Binding {
	switch it.mode {
	case types.ModeWelcome:
		return types.Keys.WelcomeHelp()
	case types.ModeSearch:
		return types.Keys.SearchHelp()
	case types.ModeFilters:
		return types.Keys.FiltersHelp()
	case types.ModeDetail:
		return types.Keys.DetailHelp()
	default:
		return types.Keys.NormalHelp()
	}
}
