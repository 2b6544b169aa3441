package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// FlushSearchAction runs the pending debounced search right away
type FlushSearchAction struct{}

func (a FlushSearchAction) Type() string { return "flush_search" }

// Welcome screen
type StartAction struct{}

func (a StartAction) Type() string { return "start" }

// Category bar actions
type MoveCategoryAction struct {
	Delta int
}

func (a MoveCategoryAction) Type() string { return "move_category" }

type ToggleCategoryAction struct {
	Index int
}

func (a ToggleCategoryAction) Type() string { return "toggle_category" }

// Filter actions
type OpenFiltersAction struct{}

func (a OpenFiltersAction) Type() string { return "open_filters" }

type FilterCursorAction struct {
	Section int
	Option  int
}

func (a FilterCursorAction) Type() string { return "filter_cursor" }

type PickFilterAction struct {
	Key   string
	Value string
}

func (a PickFilterAction) Type() string { return "pick_filter" }

type UnpickFilterAction struct {
	Key string
}

func (a UnpickFilterAction) Type() string { return "unpick_filter" }

type ApplyFiltersAction struct{}

func (a ApplyFiltersAction) Type() string { return "apply_filters" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

type ClearFilterAction struct {
	Index int // position of the chip in the chip row
}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Detail view actions
type OpenDetailAction struct {
	Index int
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type DownloadAction struct {
	Share bool
}

func (a DownloadAction) Type() string { return "download" }

type DismissAlertAction struct{}

func (a DismissAlertAction) Type() string { return "dismiss_alert" }

// Misc
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
