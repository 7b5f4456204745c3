package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/render"
)

func newStepCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "step <map.txt|scenario.yaml>",
		Short: "Interactively expand the frontier and move the agent",
		Long: `Opens a terminal stepper over the planner.

Keys:
  space   expand one cell
  enter   move the agent one hop (plans or repairs as needed)
  f       toggle the frontier table
  c       toggle the compact layout
  q       quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(args[0])
			if err != nil {
				return err
			}
			// the TUI owns the terminal; logs are kept quiet unless asked for
			logger, err := newLogger(cmd.ErrOrStderr(), root.logLevel, l)
			if err != nil {
				return err
			}
			p, err := dstar.New(l.grid, nil, append(l.opts, dstar.WithLogger(logger))...)
			if err != nil {
				return err
			}

			prog := tea.NewProgram(newStepModel(p),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = prog.Run()

			return err
		},
	}
}

var (
	stepTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	stepStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("#20B9B4"))
	stepHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	stepError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
)

// stepModel is the bubbletea model of the interactive stepper.
type stepModel struct {
	p        *dstar.Planner
	status   string
	err      error
	done     bool
	frontier bool
	compact  bool
}

func newStepModel(p *dstar.Planner) *stepModel {
	return &stepModel{p: p, status: "press space to expand, enter to move"}
}

func (m *stepModel) Init() tea.Cmd { return nil }

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "f":
		m.frontier = !m.frontier
	case "c":
		m.compact = !m.compact
	case " ":
		if m.done {
			return m, nil
		}
		m.p.Seed()
		minK, ok := m.p.Step()
		if !ok {
			m.status = "frontier exhausted"
			break
		}
		m.status = fmt.Sprintf("expanded; min k = %.1f, %d queued", minK, len(m.p.Frontier()))
	case "enter":
		if m.done {
			return m, nil
		}
		out, err := m.p.Advance()
		if err != nil {
			m.err = err
			m.done = true
			break
		}
		m.status = fmt.Sprintf("agent at %v: %s", m.p.Grid().Agent(), out)
		m.done = out != dstar.StepContinues
	}

	return m, nil
}

func (m *stepModel) View() string {
	var sb strings.Builder
	s := m.p.Stats()
	sb.WriteString(stepTitle.Render(fmt.Sprintf("D*  expansions %d  reopenings %d  discoveries %d  moves %d",
		s.Expansions, s.Reopenings, s.Discoveries, s.Moves)))
	sb.WriteString("\n\n")

	var ropts []render.Option
	if m.compact {
		ropts = append(ropts, render.WithCompact())
	}
	sb.WriteString(render.String(m.p, ropts...))
	sb.WriteString("\n\n")
	if m.frontier {
		sb.WriteString(render.FrontierString(m.p))
		sb.WriteString("\n\n")
	}

	if m.err != nil {
		sb.WriteString(stepError.Render("error: " + m.err.Error()))
	} else {
		sb.WriteString(stepStatus.Render(m.status))
	}
	sb.WriteString("\n")
	sb.WriteString(stepHelp.Render("space expand • enter move • f frontier • c compact • q quit"))
	sb.WriteString("\n")

	return sb.String()
}
