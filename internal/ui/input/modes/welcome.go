package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/ui/input/types"
)

type WelcomeMode struct{}

func NewWelcomeMode() *WelcomeMode {
	return &WelcomeMode{}
}

func (m *WelcomeMode) Name() string {
	return "welcome"
}

func (m *WelcomeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *WelcomeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *WelcomeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, keys.Start):
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.StartAction{},
		}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
