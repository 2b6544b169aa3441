package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"pixels/internal/domain"
	"pixels/internal/gallery"
	"pixels/internal/ui/input/types"
	"pixels/internal/ui/state"
	"pixels/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	session          *gallery.Session
	width            int
	height           int
	help             help.Model
	spinner          string
	helpContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, session *gallery.Session, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		session:          session,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetHelpContent sets the help shown in the fallback popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	filters := vm.session.Filters()
	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Mode:           vm.inputTransformer.GetInputModeString(),
		Images:         vm.session.Images(),
		SelectedIndex:  vm.state.SelectedIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		SearchInput:    vm.inputTransformer.GetSearchInput(vm.session.SearchText()),
		SearchFocused:  vm.inputTransformer.mode == types.ModeSearch,
		Categories:     domain.Categories,
		CategoryCursor: vm.state.CategoryCursor,
		ActiveCategory: vm.session.Category(),
		FilterKeys:     filters.Keys(),
		Filters:        filters,
		Pending:        vm.session.Pending(),
		FilterSection:  vm.state.FilterSection,
		FilterOption:   vm.state.FilterOption,
		Alert:          vm.state.Alert,
		Downloading:    vm.state.Downloading,
		Sharing:        vm.state.Sharing,
		Loading:        vm.session.Loading(),
		Spinner:        vm.spinner,
		TotalHits:      vm.session.TotalHits(),
		Page:           vm.session.Page(),
		LastError:      vm.session.LastError(),
		StatusMessage:  vm.state.StatusMessage,
		ShowHelp:       vm.state.ShowHelp,
		HelpContent:    vm.helpContent,
		KeyHelp:        vm.help.ShortHelpView(vm.inputTransformer.KeyBindings()),
	}
	if vs.Mode == "detail" {
		if img, ok := vm.session.Image(vm.state.DetailIndex); ok {
			vs.Detail = &img
		}
	}
	return vs
}
