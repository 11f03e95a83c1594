package scenario

import (
	"context"
	"testing"

	"collection-adapter/core/host"
	"collection-adapter/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childIDs(st StepResult) []string {
	out := make([]string, 0, len(st.Snapshot.Children))
	for _, c := range st.Snapshot.Children {
		out = append(out, c.ID)
	}
	return out
}

func TestRunner_Run(t *testing.T) {
	sc, err := Parse([]byte(shrinkYAML))
	require.NoError(t, err)

	res, err := NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), sc)
	require.NoError(t, err)
	require.Len(t, res.Steps, 5)
	assert.False(t, res.Failed())

	set := res.Steps[0]
	assert.Equal(t, "set [a b c]", set.Step)
	assert.Empty(t, set.Ops)
	assert.Empty(t, set.Reports)
	assert.Equal(t, []string{"header-0"}, childIDs(set))

	attach := res.Steps[1]
	assert.Equal(t, []host.Op{
		{Kind: host.OpInsert, Index: 1, Count: 1},
		{Kind: host.OpInsert, Index: 2, Count: 1},
		{Kind: host.OpInsert, Index: 3, Count: 1},
		{Kind: host.OpLayout},
	}, attach.Ops)
	require.Len(t, attach.Reports, 1)
	assert.Equal(t, 3, attach.Reports[0].Created)

	shrink := res.Steps[2]
	assert.Equal(t, []host.Op{
		{Kind: host.OpRemoveRange, Index: 3, Count: 1},
		{Kind: host.OpLayout},
	}, shrink.Ops)
	assert.Equal(t, []string{"header-0", "n1", "n2"}, childIDs(shrink))
	assert.True(t, shrink.Snapshot.Children[2].Stashed)
	assert.Equal(t, 1, shrink.Reports[0].Stashed)
	assert.Equal(t, 1, shrink.Reports[0].Evicted)

	retype := res.Steps[3]
	assert.Equal(t, []host.Op{
		{Kind: host.OpRemove, Index: 2, Count: 1},
		{Kind: host.OpInsert, Index: 2, Count: 1},
		{Kind: host.OpLayout},
	}, retype.Ops)
	assert.Equal(t, []string{"header-0", "n1", "n4"}, childIDs(retype))
	assert.Equal(t, 1, retype.Reports[0].Retyped)
	assert.Equal(t, 1, retype.Reports[0].Created)
	assert.Equal(t, 2, retype.Snapshot.Pool[0].Idle)

	detach := res.Steps[4]
	assert.Equal(t, []host.Op{{Kind: host.OpRemoveRange, Index: 1, Count: 2}}, detach.Ops)
	assert.Empty(t, detach.Reports)
	assert.Equal(t, []string{"header-0"}, childIDs(detach))
	assert.False(t, detach.Snapshot.Attached)
}

func TestRunner_Capacities(t *testing.T) {
	sc, err := Parse([]byte(`
name: caps
stash_size: 0
capacities: {0: 1}
steps:
  - set: [a, b, c]
  - attach
  - set: []
  - capacity: {type: 0, max: 0}
  - clear_pool
`))
	require.NoError(t, err)

	res, err := NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), sc)
	require.NoError(t, err)

	emptied := res.Steps[2].Snapshot.Pool[0]
	assert.Equal(t, 1, emptied.Idle)
	assert.Equal(t, 2, emptied.Discards)
	assert.Equal(t, 0, res.Steps[3].Snapshot.Pool[0].Idle)
	assert.Equal(t, 0, res.Steps[4].Snapshot.Pool[0].Capacity)
}

func TestRunner_StepFailure(t *testing.T) {
	sc := &Scenario{Name: "broken", Steps: []Step{{Action: ActionAttach}, {Action: "explode"}, {Action: ActionDetach}}}

	res, err := NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), sc)
	assert.ErrorIs(t, err, ErrInvalidScenario)
	require.NotNil(t, res)
	require.Len(t, res.Steps, 2)
	assert.True(t, res.Failed())
	assert.Contains(t, res.Steps[1].Error, "explode")
}

func TestRunner_Cancelled(t *testing.T) {
	sc, err := Parse([]byte(shrinkYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewRunner(reconcile.DefaultSettings(), nil).Run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Steps)
}

func TestRunner_InvalidScenario(t *testing.T) {
	_, err := NewRunner(reconcile.DefaultSettings(), nil).Run(context.Background(), &Scenario{Name: "x"})
	assert.ErrorIs(t, err, ErrInvalidScenario)
}
