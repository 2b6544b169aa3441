package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the modes react to. Modes match against it and
// the footer renders it through bubbles/help.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	CategoryPrev   key.Binding
	CategoryNext   key.Binding
	CategoryToggle key.Binding

	Search      key.Binding
	ClearSearch key.Binding
	Submit      key.Binding

	Filters      key.Binding
	ClearFilter  key.Binding
	ResetFilters key.Binding

	SectionUp   key.Binding
	SectionDown key.Binding
	OptionLeft  key.Binding
	OptionRight key.Binding
	Pick        key.Binding
	Apply       key.Binding
	Reset       key.Binding

	Open     key.Binding
	Back     key.Binding
	Download key.Binding
	Share    key.Binding

	Start     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Top:      key.NewBinding(key.WithKeys("home", "g", "t"), key.WithHelp("g/t", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

	CategoryPrev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
	CategoryNext:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
	CategoryToggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle category")),

	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ClearSearch: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear search")),
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search now")),

	Filters:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
	ClearFilter:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x+N", "clear chip N")),
	ResetFilters: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "reset filters")),

	SectionUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "section")),
	SectionDown: key.NewBinding(key.WithKeys("down", "j")),
	OptionLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "option")),
	OptionRight: key.NewBinding(key.WithKeys("right", "l")),
	Pick:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick")),
	Apply:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
	Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),

	Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
	Share:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),

	Start:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

// NormalHelp lists the bindings shown in the home screen footer
func (k KeyMap) NormalHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.CategoryPrev, k.CategoryNext, k.CategoryToggle, k.Search, k.Filters, k.Open, k.Help, k.Quit}
}

// SearchHelp lists the bindings shown while the search bar is focused
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ClearSearch, k.Back}
}

// FiltersHelp lists the bindings shown in the filters modal
func (k KeyMap) FiltersHelp() []key.Binding {
	return []key.Binding{k.SectionUp, k.OptionLeft, k.Pick, k.Apply, k.Reset, k.Back}
}

// DetailHelp lists the bindings shown in the detail view
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Download, k.Share, k.Back, k.Help}
}

// WelcomeHelp lists the bindings shown on the welcome screen
func (k KeyMap) WelcomeHelp() []key.Binding {
	return []key.Binding{k.Start, k.Help, k.Quit}
}
