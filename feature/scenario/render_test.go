package scenario

import (
	"context"
	"strings"
	"testing"

	"collection-adapter/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	sc, err := Parse([]byte(shrinkYAML))
	require.NoError(t, err)
	res, err := NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), sc)
	require.NoError(t, err)

	out := Render(res, 72)
	assert.Contains(t, out, "scenario shrink")
	assert.Contains(t, out, "1. set [a b c]")
	assert.Contains(t, out, "header-0")
	assert.Contains(t, out, "(stashed)")
	assert.Contains(t, out, "stashed 1  evicted 1")
	assert.Contains(t, out, "pool t0 2/5")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(stripANSI(line))), 72)
	}
}

func TestRenderStep_Error(t *testing.T) {
	out := RenderStep(StepResult{Index: 2, Step: "explode", Error: "unknown action"}, 0)
	assert.Contains(t, out, "2. explode")
	assert.Contains(t, out, "(no children)")
	assert.Contains(t, out, "error: unknown action")
}

func TestTerminalWidth(t *testing.T) {
	// Under go test stdout is not a terminal
	assert.Positive(t, TerminalWidth())
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
