package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/ui/input/types"
)

// clearPrefixTimeout bounds how long "x" waits for the chip number
const clearPrefixTimeout = 1500 * time.Millisecond

type NormalMode struct {
	lastKeyWasX bool
	lastXTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	m.lastKeyWasX = false
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys

	// "x" followed by a digit clears that filter chip
	if m.lastKeyWasX {
		m.lastKeyWasX = false
		if time.Since(m.lastXTime) < clearPrefixTimeout {
			if chip, ok := chipNumber(msg); ok {
				if chip <= ctx.FilterCount() {
					return []types.Action{types.ClearFilterAction{Index: chip - 1}}, true
				}
				return nil, true
			}
		}
	}

	switch {
	case key.Matches(msg, keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, keys.CategoryPrev):
		return []types.Action{types.MoveCategoryAction{Delta: -1}}, true

	case key.Matches(msg, keys.CategoryNext):
		return []types.Action{types.MoveCategoryAction{Delta: 1}}, true

	case key.Matches(msg, keys.CategoryToggle):
		return []types.Action{types.ToggleCategoryAction{Index: ctx.CategoryCursor()}}, true

	case key.Matches(msg, keys.Open):
		if ctx.HasImages() {
			return []types.Action{
				types.OpenDetailAction{Index: ctx.CurrentIndex()},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, false

	case key.Matches(msg, keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, keys.ClearSearch):
		if ctx.SearchText() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true

	case key.Matches(msg, keys.Filters):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilters}}, true

	case key.Matches(msg, keys.ClearFilter):
		if ctx.FilterCount() > 0 {
			m.lastKeyWasX = true
			m.lastXTime = time.Now()
		}
		return nil, true

	case key.Matches(msg, keys.ResetFilters):
		return []types.Action{types.ResetFiltersAction{}}, true

	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

// chipNumber returns the 1-based chip number for a digit key
func chipNumber(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
