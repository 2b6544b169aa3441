package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/domain"
	"pixels/internal/ui/input/types"
)

// FiltersMode drives the filters modal. It owns the section/option cursor;
// picks go to the session's pending set and only apply on "a".
type FiltersMode struct {
	section int
	option  int
}

func NewFiltersMode() *FiltersMode {
	return &FiltersMode{}
}

func (m *FiltersMode) Name() string {
	return "filters"
}

func (m *FiltersMode) Enter(ctx types.Context) []types.Action {
	// Pending picks start as a copy of the active filters
	m.section = 0
	m.option = optionIndex(domain.FilterSections[0], ctx.ActiveFilter(domain.FilterSections[0].Name))
	return []types.Action{types.OpenFiltersAction{}, m.cursor()}
}

func (m *FiltersMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FiltersMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	sections := domain.FilterSections

	switch {
	case key.Matches(msg, keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Filters):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, keys.SectionUp):
		m.section = wrap(m.section-1, len(sections))
		m.option = m.pickedOption(ctx)
		return []types.Action{m.cursor()}, true

	case key.Matches(msg, keys.SectionDown):
		m.section = wrap(m.section+1, len(sections))
		m.option = m.pickedOption(ctx)
		return []types.Action{m.cursor()}, true

	case key.Matches(msg, keys.OptionLeft):
		m.option = wrap(m.option-1, len(sections[m.section].Options))
		return []types.Action{m.cursor()}, true

	case key.Matches(msg, keys.OptionRight):
		m.option = wrap(m.option+1, len(sections[m.section].Options))
		return []types.Action{m.cursor()}, true

	case key.Matches(msg, keys.Pick):
		section := sections[m.section]
		value := section.Options[m.option]
		if ctx.PendingFilter(section.Name) == value {
			return []types.Action{types.UnpickFilterAction{Key: section.Name}}, true
		}
		return []types.Action{types.PickFilterAction{Key: section.Name, Value: value}}, true

	case key.Matches(msg, keys.Apply):
		return []types.Action{
			types.ApplyFiltersAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case key.Matches(msg, keys.Reset):
		return []types.Action{
			types.ResetFiltersAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// The modal swallows everything else
	return nil, true
}

// Cursor returns the current section and option
func (m *FiltersMode) Cursor() (int, int) {
	return m.section, m.option
}

func (m *FiltersMode) cursor() types.Action {
	return types.FilterCursorAction{Section: m.section, Option: m.option}
}

// pickedOption places the cursor on the pending pick of the current section
func (m *FiltersMode) pickedOption(ctx types.Context) int {
	section := domain.FilterSections[m.section]
	return optionIndex(section, ctx.PendingFilter(section.Name))
}

func optionIndex(section domain.FilterSection, value string) int {
	for i, opt := range section.Options {
		if opt == value {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
