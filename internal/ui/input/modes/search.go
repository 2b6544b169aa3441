package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search images", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, types.Keys.ClearSearch) {
		return []types.Action{types.ClearSearchAction{}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

// Exit leaves the search bar; text still waiting on the debounce runs now
func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return append(m.TextInputMode.Exit(ctx), types.FlushSearchAction{})
}
