package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

const (
	graphWidth  = 70
	graphHeight = 12
)

// Estimate is one point of a running Monte Carlo price estimate.
type Estimate struct {
	NrPaths int
	Value   float64
	StdErr  float64
}

// Model is a bubbletea model that renders a stream of estimates as a
// convergence graph. The producer closes the channel when the ensemble is
// exhausted.
type Model struct {
	title     string
	estimates <-chan Estimate
	history   []float64
	latest    Estimate
	done      bool
}

func NewModel(title string, estimates <-chan Estimate) Model {
	return Model{
		title:     title,
		estimates: estimates,
		history:   make([]float64, 0, 256),
	}
}

type estimateMsg Estimate

type doneMsg struct{}

func waitForEstimate(ch <-chan Estimate) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return doneMsg{}
		}
		return estimateMsg(e)
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEstimate(m.estimates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case estimateMsg:
		m.latest = Estimate(msg)
		m.history = append(m.history, m.latest.Value)
		if len(m.history) > 4*graphWidth {
			m.history = m.history[len(m.history)-4*graphWidth:]
		}
		return m, waitForEstimate(m.estimates)
	case doneMsg:
		m.done = true
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	b.WriteString("\n")

	var stats strings.Builder
	stats.WriteString(labelStyle.Render("paths") + valueStyle.Render(fmt.Sprintf("%d", m.latest.NrPaths)) + "\n")
	stats.WriteString(labelStyle.Render("estimate") + valueStyle.Render(fmt.Sprintf("%.6f", m.latest.Value)) + "\n")
	stats.WriteString(labelStyle.Render("std error") + valueStyle.Render(fmt.Sprintf("%.6f", m.latest.StdErr)))
	b.WriteString(statsStyle.Render(stats.String()))
	b.WriteString("\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("running price estimate"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(doneStyle.Render("converged — ensemble exhausted"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")

	return b.String()
}

// Run blocks until the stream ends and the user quits.
func Run(title string, estimates <-chan Estimate) error {
	_, err := tea.NewProgram(NewModel(title, estimates)).Run()
	return err
}
