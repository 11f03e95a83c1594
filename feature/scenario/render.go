package scenario

import (
	"fmt"
	"os"
	"strings"

	"collection-adapter/feature/session/models"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorBox     = boxStyle.BorderForeground(lipgloss.Color("9"))
	fixedStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	stashedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// TerminalWidth returns the width of stdout, or DefaultWidth when it is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Render draws every step of a result, one box per step.
func Render(res *Result, width int) string {
	blocks := make([]string, 0, len(res.Steps)+1)
	blocks = append(blocks, titleStyle.Render("scenario "+res.Name))
	for _, st := range res.Steps {
		blocks = append(blocks, RenderStep(st, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderStep draws the host children, the pass summary and the pool of one step.
func RenderStep(st StepResult, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("%d. %s", st.Index, st.Step))}
	if len(st.Snapshot.Children) == 0 {
		lines = append(lines, fixedStyle.Render("(no children)"))
	}
	for _, c := range st.Snapshot.Children {
		lines = append(lines, renderChild(c))
	}

	if len(st.Reports) > 0 {
		r := st.Reports[len(st.Reports)-1]
		lines = append(lines, statsStyle.Render(fmt.Sprintf(
			"stashed %d  evicted %d  reused %d  retyped %d  taken %d  created %d",
			r.Stashed, r.Evicted, r.Reused, r.Retyped, r.Taken, r.Created,
		)))
	}
	if pools := renderPool(st.Snapshot); pools != "" {
		lines = append(lines, statsStyle.Render(pools))
	}

	box := boxStyle
	if st.Error != "" {
		lines = append(lines, errorStyle.Render("error: "+st.Error))
		box = errorBox
	}
	// Width excludes the border
	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderChild(c models.Child) string {
	if !c.Managed {
		return fixedStyle.Render(fmt.Sprintf("%2d  %-8s %s", c.Index, c.ID, c.Label))
	}
	line := fmt.Sprintf("%2d  %-8s %-16s type %d  pos %d", c.Index, c.ID, c.Label, c.Type, c.Position)
	if c.Stashed {
		return stashedStyle.Render(line) + " (stashed)"
	}
	return line
}

func renderPool(snap models.Snapshot) string {
	parts := make([]string, 0, len(snap.Pool))
	for _, p := range snap.Pool {
		parts = append(parts, fmt.Sprintf("t%d %d/%d", p.Type, p.Idle, p.Capacity))
	}
	if len(parts) == 0 {
		return ""
	}
	return "pool " + strings.Join(parts, "  ")
}
