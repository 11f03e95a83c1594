package cmd

import (
	"fmt"
	"strings"

	"collection-adapter/feature/scenario"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// playCmd steps through a scenario interactively.
var playCmd = &cobra.Command{
	Use:   "play <file|storage:name>",
	Short: "Step through a scenario interactively",
	Long: `Replay a scenario and browse the result one step at a time.

Keys: right/l/n next, left/h/p previous, home/g first, end/G last, q quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, runErr := runScenario(cmd.Context(), args[0])
		if res == nil {
			return runErr
		}
		if len(res.Steps) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "scenario has no steps")
			return runErr
		}

		m := newPlayModel(res, scenario.TerminalWidth())
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("player failed: %w", err)
		}
		return runErr
	},
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// playModel is the bubbletea model of the step browser.
type playModel struct {
	result *scenario.Result
	cursor int
	width  int
}

func newPlayModel(res *scenario.Result, width int) playModel {
	return playModel{result: res, width: width}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		last := len(m.result.Steps) - 1
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "n", " ":
			if m.cursor < last {
				m.cursor++
			}
		case "left", "h", "p":
			if m.cursor > 0 {
				m.cursor--
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = last
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("scenario %s  step %d/%d\n", m.result.Name, m.cursor+1, len(m.result.Steps)))
	b.WriteString(scenario.RenderStep(m.result.Steps[m.cursor], m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ step • g/G first/last • q quit"))
	b.WriteString("\n")
	return b.String()
}

func init() {
	RootCmd.AddCommand(playCmd)
}
