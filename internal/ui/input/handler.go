package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/ui/input/modes"
	"pixels/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	filters     *modes.FiltersMode
}

func New(initial types.Mode) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	h := &Handler{
		currentMode: initial,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		filters:     modes.NewFiltersMode(),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeWelcome] = modes.NewWelcomeMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeFilters] = h.filters
	h.modes[types.ModeDetail] = modes.NewDetailMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, action)
			enterCmd, enterActions := h.switchMode(changeMode.Mode, ctx)
			if enterCmd != nil {
				cmd = enterCmd
			}
			allActions = append(allActions, enterActions...)
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// switchMode runs the exit/enter hooks and returns their actions
func (h *Handler) switchMode(mode types.Mode, ctx types.Context) (tea.Cmd, []types.Action) {
	var actions []types.Action
	var cmd tea.Cmd

	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Exit(ctx)...)
	}

	h.currentMode = mode

	if h.isTextMode(mode) {
		// Editing resumes from the current search text
		h.textInput.SetValue(ctx.SearchText())
		h.textInput.CursorEnd()
		cmd = textinput.Blink
	}
	if h.modes[mode] != nil {
		actions = append(actions, h.modes[mode].Enter(ctx)...)
	}
	return cmd, actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// FilterCursor returns the filters modal cursor
func (h *Handler) FilterCursor() (int, int) {
	return h.filters.Cursor()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// ClearText empties the shared text input
func (h *Handler) ClearText() {
	h.textInput.Reset()
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
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
