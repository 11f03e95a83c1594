package scenario

import (
	"testing"

	"collection-adapter/feature/session/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shrinkYAML = `
name: shrink
stash_size: 1
start_offset: 1
steps:
  - set: [a, b, c]
  - attach
  - set: [a]
  - set: [a, "1:x"]
  - detach
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(`
name: full
description: every step kind
stash_size: 2
end_offset: 1
capacities: {1: 0, 2: 4}
steps:
  - set: [plain, "2:typed", {type: 3, text: mapped}, {type: "4", text: quoted}, "x:y"]
  - attach
  - refresh
  - capacity: {type: 1, max: 3}
  - clear_pool
  - detach
  - set: []
`))
	require.NoError(t, err)

	assert.Equal(t, "full", sc.Name)
	require.NotNil(t, sc.StashSize)
	assert.Equal(t, 2, *sc.StashSize)
	assert.Nil(t, sc.StartOffset)
	assert.Equal(t, map[int]int{1: 0, 2: 4}, sc.Capacities)
	require.Len(t, sc.Steps, 7)

	assert.Equal(t, []models.Item{
		{Text: "plain"},
		{Type: 2, Text: "typed"},
		{Type: 3, Text: "mapped"},
		{Type: 4, Text: "quoted"},
		{Text: "x:y"},
	}, sc.Steps[0].Items)
	assert.Equal(t, ActionAttach, sc.Steps[1].Action)
	assert.Equal(t, ActionRefresh, sc.Steps[2].Action)
	assert.Equal(t, Step{Action: ActionCapacity, Type: 1, Max: 3}, sc.Steps[3])
	assert.Equal(t, ActionClearPool, sc.Steps[4].Action)
	assert.Equal(t, ActionDetach, sc.Steps[5].Action)
	assert.Equal(t, ActionSet, sc.Steps[6].Action)
	assert.Empty(t, sc.Steps[6].Items)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ``},
		{"no name", "steps: [attach]"},
		{"no steps", "name: x"},
		{"unknown field", "name: x\ncolour: red\nsteps: [attach]"},
		{"unknown step", "name: x\nsteps: [explode]"},
		{"unknown mapped step", "name: x\nsteps: [{explode: 1}]"},
		{"two actions", "name: x\nsteps: [{attach: 1, detach: 1}]"},
		{"negative stash", "name: x\nstash_size: -1\nsteps: [attach]"},
		{"negative max", "name: x\nsteps: [{capacity: {type: 0, max: -1}}]"},
		{"bad type", "name: x\nsteps: [{capacity: {type: zero, max: 1}}]"},
		{"missing max", "name: x\nsteps: [{capacity: {type: 0}}]"},
		{"bad item", "name: x\nsteps: [{set: [[a]]}]"},
		{"not yaml", "name: [x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}
}

func TestStep_String(t *testing.T) {
	assert.Equal(t, "set [a 1:b]", Step{Action: ActionSet, Items: []models.Item{{Text: "a"}, {Type: 1, Text: "b"}}}.String())
	assert.Equal(t, "capacity type=2 max=0", Step{Action: ActionCapacity, Type: 2}.String())
	assert.Equal(t, "detach", Step{Action: ActionDetach}.String())
}
