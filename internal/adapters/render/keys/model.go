package keys

import (
	"errors"
	"io"

	"github.com/bnema/studymate/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	keys   []application.KeySummary
	opts   RenderOptions
	styles styles
	output string
}

func newModel(keys []application.KeySummary, opts RenderOptions) model {
	return model{
		keys:   keys,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.keys, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out the key list for a terminal. It never receives key
// material, only summaries.
func Render(keys []application.KeySummary, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(keys, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
