package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pixels/internal/config"
	"pixels/internal/domain"
	"pixels/internal/eventbus"
	"pixels/internal/gallery"
	"pixels/internal/imageapi"
	"pixels/internal/logging"
	"pixels/internal/ui/input"
	inputtypes "pixels/internal/ui/input/types"
	"pixels/internal/ui/logic"
	"pixels/internal/ui/state"
	"pixels/internal/ui/viewmodels"
	"pixels/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState
	session  *gallery.Session
	searcher imageapi.Searcher

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	debouncer *gallery.Debouncer[searchDebouncedMsg]
	typingSeq uint64        // bumped whenever typed text is superseded
	timeout   time.Duration // per search request
	statusTTL time.Duration // how long status messages stay up

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
	send    func(tea.Msg)
	log     *logrus.Entry
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, searcher imageapi.Searcher) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	initial := inputtypes.ModeNormal
	if cfg.UI.ShowWelcome {
		initial = inputtypes.ModeWelcome
	}

	appState := state.NewAppState()
	session := gallery.NewSession()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		session:      session,
		searcher:     searcher,
		spinner:      sp,
		timeout:      time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		statusTTL:    3 * time.Second,
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(initial),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		log:          logging.Component("ui"),
	}
	if m.timeout <= 0 {
		m.timeout = 30 * time.Second
	}

	// Typing settles before a search is issued; the result comes back as a message
	window := time.Duration(cfg.UI.DebounceMillis) * time.Millisecond
	m.debouncer = gallery.NewDebouncer(window, func(msg searchDebouncedMsg) {
		if m.send != nil {
			m.send(msg)
		}
	})

	// Create view model with a placeholder text input (actual one is in input handler)
	m.viewModel = viewmodels.NewViewModel(appState, session, textinput.New())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.send = p.Send
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.inputHandler.CurrentMode() != inputtypes.ModeWelcome {
		cmds = append(cmds, m.fetch(m.session.Start()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// The fallback help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "q", "?", "enter":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, m.quit()
			}
			return m, nil
		}

		ctx := m.context()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		textCmd := m.inputHandler.Update(msg)
		model, cmd := m.handleNonKeyboardMsg(msg)
		return model, tea.Batch(textCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetSpinner(m.spinner.View())
	if m.state.ShowHelp {
		m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContentPlain())
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:   m.state,
		Session: m.session,
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debugf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		return m.navigate(a.Direction)

	case inputtypes.ChangeModeAction:
		// The input handler already switched modes
		return nil

	case inputtypes.StartAction:
		return m.fetch(m.session.Start())

	case inputtypes.UpdateTextAction:
		m.debouncer.Trigger(searchDebouncedMsg{text: a.Text, seq: m.typingSeq})

	case inputtypes.FlushSearchAction:
		return m.flushTyping()

	case inputtypes.SubmitTextAction:
		m.cancelTyping()
		return m.replace(m.session.Search(a.Text))

	case inputtypes.ClearSearchAction:
		m.cancelTyping()
		m.inputHandler.ClearText()
		return m.replace(m.session.Search(""))

	case inputtypes.MoveCategoryAction:
		n := len(domain.Categories)
		m.state.CategoryCursor = ((m.state.CategoryCursor+a.Delta)%n + n) % n

	case inputtypes.ToggleCategoryAction:
		if a.Index < 0 || a.Index >= len(domain.Categories) {
			return nil
		}
		// The category is the newest choice; typed text must not land after it
		m.cancelTyping()
		m.inputHandler.ClearText()
		return m.replace(m.session.ToggleCategory(domain.Categories[a.Index]))

	case inputtypes.OpenFiltersAction:
		m.session.OpenFilters()

	case inputtypes.FilterCursorAction:
		m.state.FilterSection = a.Section
		m.state.FilterOption = a.Option

	case inputtypes.PickFilterAction:
		m.session.PickFilter(a.Key, a.Value)

	case inputtypes.UnpickFilterAction:
		m.session.UnpickFilter(a.Key)

	case inputtypes.ApplyFiltersAction:
		return m.replace(m.session.ApplyFilters())

	case inputtypes.ResetFiltersAction:
		return m.replace(m.session.ResetFilters())

	case inputtypes.ClearFilterAction:
		keys := m.session.Filters().Keys()
		if a.Index < 0 || a.Index >= len(keys) {
			return nil
		}
		return m.replace(m.session.ClearFilter(keys[a.Index]))

	case inputtypes.OpenDetailAction:
		// The list must not be replaced under the detail view
		m.cancelTyping()
		m.state.DetailIndex = a.Index
		m.state.Alert = ""
		m.state.StatusMessage = ""

	case inputtypes.DownloadAction:
		return m.requestDownload(a.Share)

	case inputtypes.DismissAlertAction:
		m.state.Alert = ""

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.ShowHelp = !m.state.ShowHelp
			return nil
		}
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		return m.quit()
	}
	return nil
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		m.deliver(msg)
		return m, nil

	case searchDebouncedMsg:
		if msg.seq != m.typingSeq {
			m.log.WithField("text", msg.text).Debug("dropping superseded search text")
			return m, nil
		}
		return m, m.replace(m.session.Search(msg.text))

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: fall back to the popup
			m.log.WithError(msg.err).Warn("help pager failed")
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		if m.state.StatusMessage == msg.message {
			m.state.StatusMessage = ""
		}
		return m, nil
	}
	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DownloadCompletedEvent:
		if !m.state.FinishTransfer(e.ID) {
			return nil
		}
		msg := "Saved to " + e.Path
		if e.Shared {
			msg = "Copied " + e.Path + " to clipboard"
		}
		return m.setStatus(msg)

	case eventbus.DownloadFailedEvent:
		if !m.state.FinishTransfer(e.ID) {
			return nil
		}
		what := "Download"
		if e.Share {
			what = "Share"
		}
		m.state.Alert = fmt.Sprintf("%s failed: %v", what, e.Err)

	case eventbus.ErrorEvent:
		return m.setStatus(e.Message)
	}
	return nil
}

// fetch runs a search request in the background
func (m *Model) fetch(req *gallery.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	m.publish(eventbus.SearchRequestedEvent{Seq: req.Seq, Mode: req.Mode, Params: req.Params})

	searcher, timeout := m.searcher, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return searchResultMsg{req: req, res: searcher.Search(ctx, req.Params)}
	}
}

// replace starts a first-page fetch and moves the cursor back to the top
func (m *Model) replace(req *gallery.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	m.state.ResetSelection()
	m.syncNavigatorState()
	return m.fetch(req)
}

// deliver hands a finished search to the session
func (m *Model) deliver(msg searchResultMsg) {
	applied := m.session.Deliver(msg.req, msg.res)
	if msg.req == nil {
		return
	}
	if msg.res.OK() {
		m.publish(eventbus.SearchCompletedEvent{
			Seq:       msg.req.Seq,
			Mode:      msg.req.Mode,
			Params:    msg.req.Params,
			Count:     len(msg.res.Images),
			TotalHits: msg.res.TotalHits,
			Applied:   applied,
		})
	} else {
		m.publish(eventbus.SearchFailedEvent{Seq: msg.req.Seq, Params: msg.req.Params, Message: msg.res.Message})
	}

	// Keep the cursor inside the list
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}

// navigate moves the selection and reports the bottom edge to the session
func (m *Model) navigate(direction string) tea.Cmd {
	m.syncNavigatorState()
	prev := m.state.SelectedIndex
	switch direction {
	case "up":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-1)
	case "down":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(1)
	case "pageup":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(-m.navigator.PageSize())
	case "pagedown":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(m.navigator.PageSize())
	case "home":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(0)
	case "end":
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.navigator.GetMaxIndex())
	}

	if m.navigator.AtLastRow() {
		// Arriving on the last row is a fresh bottom edge; staying there is not
		if m.state.SelectedIndex != prev {
			m.session.ScrolledAway()
		}
		return m.fetch(m.session.ScrolledToBottom())
	}
	m.session.ScrolledAway()
	return nil
}

// requestDownload asks the download service for the image in the detail view
func (m *Model) requestDownload(share bool) tea.Cmd {
	if m.state.Busy() {
		return nil
	}
	img, ok := m.session.Image(m.state.DetailIndex)
	if !ok {
		return nil
	}
	if m.bus == nil {
		m.state.Alert = "Downloads are unavailable"
		return nil
	}

	id := uuid.NewString()
	m.state.StartTransfer(id, share)
	m.state.StatusMessage = ""
	m.bus.Publish(eventbus.DownloadRequestedEvent{
		ID:    id,
		Image: img,
		URL:   img.WebformatURL,
		Share: share,
	})
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContentPlain()
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(content)

		// Send resume message to restart rendering
		m.send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.StatusMessage = msg
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{message: msg} })
}

func (m *Model) quit() tea.Cmd {
	m.cancelTyping()
	return tea.Quit
}

// cancelTyping drops a pending debounced search, including one already on its
// way to Update
func (m *Model) cancelTyping() {
	m.debouncer.Stop()
	m.typingSeq++
}

// flushTyping runs a pending debounced search now. The debouncer delivers
// through Program.Send, so it is flushed from a command, never from Update.
func (m *Model) flushTyping() tea.Cmd {
	if !m.debouncer.Pending() {
		return nil
	}
	d := m.debouncer
	return func() tea.Msg {
		d.Flush()
		return nil
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		m.session.Len(),
	)
}

func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = views.ListHeight(m.height)
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(m.state.SelectedIndex)
}
