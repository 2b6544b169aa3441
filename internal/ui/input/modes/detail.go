package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pixels/internal/ui/input/types"
)

type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.DismissAlertAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.Keys
	switch {
	case key.Matches(msg, keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, keys.Download):
		return []types.Action{types.DownloadAction{Share: false}}, true
	case key.Matches(msg, keys.Share):
		return []types.Action{types.DownloadAction{Share: true}}, true
	case key.Matches(msg, keys.Open):
		// enter dismisses the alert box
		return []types.Action{types.DismissAlertAction{}}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
