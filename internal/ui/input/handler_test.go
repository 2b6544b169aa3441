package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixels/internal/ui/input/types"
)

type fakeContext struct {
	index    int
	total    int
	text     string
	cursor   int
	category string
	active   map[string]string
	pending  map[string]string
}

func (c *fakeContext) CurrentIndex() int { return c.index }
func (c *fakeContext) TotalItems() int { return c.total }
func (c *fakeContext) HasImages() bool { return c.total > 0 }
func (c *fakeContext) SearchText() string { return c.text }
func (c *fakeContext) CategoryCursor() int { return c.cursor }
func (c *fakeContext) ActiveCategory() string { return c.category }
func (c *fakeContext) FilterCount() int { return len(c.active) }
func (c *fakeContext) ActiveFilter(key string) string { return c.active[key] }
func (c *fakeContext) PendingFilter(key string) string { return c.pending[key] }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSearchModeResumesFromSessionText(t *testing.T) {
	h := New(types.ModeNormal)
	ctx := &fakeContext{text: "cats"}

	actions, _ := h.HandleKey(runes("/"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "cats", h.TextInput().Value())

	actions, _ = h.HandleKey(runes("!"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "cats!"}}, actions)
}

func TestSearchModeEscKeepsText(t *testing.T) {
	h := New(types.ModeNormal)
	ctx := &fakeContext{}
	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("d"), ctx)

	// Leaving the bar flushes text still waiting on the debounce
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{
		types.ChangeModeAction{Mode: types.ModeNormal},
		types.FlushSearchAction{},
	}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestSearchModeSubmit(t *testing.T) {
	h := New(types.ModeNormal)
	ctx := &fakeContext{}
	h.HandleKey(runes("/"), ctx)
	for _, r := range "dogs" {
		h.HandleKey(runes(string(r)), ctx)
	}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 3)
	assert.Equal(t, types.SubmitTextAction{Text: "dogs", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalModeIgnoresUnboundKeys(t *testing.T) {
	h := New(types.ModeNormal)
	actions, cmd := h.HandleKey(runes("z"), &fakeContext{})
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}

func TestClearChipPrefix(t *testing.T) {
	h := New(types.ModeNormal)
	ctx := &fakeContext{active: map[string]string{"colors": "red", "order": "latest"}}

	actions, _ := h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("2"), ctx)
	assert.Equal(t, []types.Action{types.ClearFilterAction{Index: 1}}, actions)

	// Out of range chip numbers are swallowed
	h.HandleKey(runes("x"), ctx)
	actions, _ = h.HandleKey(runes("9"), ctx)
	assert.Empty(t, actions)

	// Without filters "x" does not arm the prefix
	empty := &fakeContext{}
	h.HandleKey(runes("x"), empty)
	actions, _ = h.HandleKey(runes("1"), empty)
	assert.Empty(t, actions)
}

func TestOpenDetailNeedsImages(t *testing.T) {
	h := New(types.ModeNormal)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	actions, _ := h.HandleKey(enter, &fakeContext{})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	actions, _ = h.HandleKey(enter, &fakeContext{index: 4, total: 10})
	require.NotEmpty(t, actions)
	assert.Equal(t, types.OpenDetailAction{Index: 4}, actions[0])
	assert.Equal(t, types.ModeDetail, h.CurrentMode())
}

func TestDetailExitDismissesAlert(t *testing.T) {
	h := New(types.ModeDetail)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, &fakeContext{})
	assert.Contains(t, actions, types.Action(types.DismissAlertAction{}))
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestFiltersModalCursor(t *testing.T) {
	h := New(types.ModeNormal)
	ctx := &fakeContext{active: map[string]string{"order": "latest"}, pending: map[string]string{}}

	actions, _ := h.HandleKey(runes("f"), ctx)
	assert.Equal(t, types.ModeFilters, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.OpenFiltersAction{}))
	// The cursor starts on the active pick of the first section
	assert.Contains(t, actions, types.Action(types.FilterCursorAction{Section: 0, Option: 1}))

	h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	section, option := h.FilterCursor()
	assert.Equal(t, 3, section, "sections wrap")
	assert.Equal(t, 0, option)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	require.Len(t, actions, 1)
	assert.IsType(t, types.PickFilterAction{}, actions[0])

	// Unbound keys are swallowed by the modal
	actions, _ = h.HandleKey(runes("z"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeFilters, h.CurrentMode())

	h.HandleKey(runes("a"), ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestWelcomeStarts(t *testing.T) {
	h := New(types.ModeWelcome)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, &fakeContext{})
	assert.Equal(t, []types.Action{
		types.ChangeModeAction{Mode: types.ModeNormal},
		types.StartAction{},
	}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
