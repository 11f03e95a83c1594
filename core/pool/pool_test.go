package pool_test

import (
	"testing"

	"collection-adapter/core/pool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type thing struct {
	name string
	typ  int
}

func (t *thing) Type() int { return t.typ }

func newThing(name string, typ int) *thing {
	return &thing{name: name, typ: typ}
}

func TestPool_CapacityScenario(t *testing.T) {
	p := pool.New[*thing](pool.Options{})
	p.SetCapacity(0, 2)

	a, b, c := newThing("A", 0), newThing("B", 0), newThing("C", 0)
	require.NoError(t, p.Put(a))
	require.NoError(t, p.Put(b))
	require.NoError(t, p.Put(c))
	assert.Equal(t, 2, p.Count(0))

	got, ok := p.Take(0)
	require.True(t, ok)
	assert.Same(t, b, got)
	assert.Equal(t, 1, p.Count(0))

	got, ok = p.Take(0)
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = p.Take(0)
	assert.False(t, ok)
}

func TestPool_TakeMissHasNoSideEffect(t *testing.T) {
	p := pool.New[*thing](pool.Options{})
	got, ok := p.Take(7)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 0, p.Count(7))
	assert.Equal(t, pool.DefaultCapacity, p.Capacity(7))
}

func TestPool_PartitionsAreIndependent(t *testing.T) {
	p := pool.New[*thing](pool.Options{DefaultCapacity: 1})
	require.NoError(t, p.Put(newThing("a", 0)))
	require.NoError(t, p.Put(newThing("b", 1)))
	require.NoError(t, p.Put(newThing("c", 1)))

	assert.Equal(t, 1, p.Count(0))
	assert.Equal(t, 1, p.Count(1))
	assert.Equal(t, []int{0, 1}, p.Types())

	got, ok := p.Take(1)
	require.True(t, ok)
	assert.Equal(t, "b", got.name)
}

func TestPool_CapacityNeverExceeded(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		puts     int
	}{
		{"zero capacity", 0, 4},
		{"below capacity", 5, 3},
		{"at capacity", 3, 3},
		{"above capacity", 2, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pool.New[*thing](pool.Options{})
			p.SetCapacity(0, tt.capacity)
			for i := 0; i < tt.puts; i++ {
				assert.NoError(t, p.Put(newThing("x", 0)))
				assert.LessOrEqual(t, p.Count(0), tt.capacity)
			}
			want := min(tt.capacity, tt.puts)
			assert.Equal(t, want, p.Count(0))
			assert.Equal(t, tt.puts-want, p.Stats()[0].Discards)
		})
	}
}

func TestPool_SetCapacityTrims(t *testing.T) {
	p := pool.New[*thing](pool.Options{})
	a, b, c := newThing("A", 0), newThing("B", 0), newThing("C", 0)
	for _, it := range []*thing{a, b, c} {
		require.NoError(t, p.Put(it))
	}

	p.SetCapacity(0, 1)
	assert.Equal(t, 1, p.Count(0))
	got, ok := p.Take(0)
	require.True(t, ok)
	assert.Same(t, a, got)

	p.SetCapacity(0, -3)
	assert.Equal(t, 0, p.Capacity(0))
}

func TestPool_DebugRejectsDuplicates(t *testing.T) {
	p := pool.New[*thing](pool.Options{Debug: true})
	a := newThing("A", 3)
	require.NoError(t, p.Put(a))
	err := p.Put(a)
	assert.ErrorIs(t, err, pool.ErrAlreadyPooled)
	assert.Equal(t, 1, p.Count(3))

	relaxed := pool.New[*thing](pool.Options{})
	require.NoError(t, relaxed.Put(a))
	assert.NoError(t, relaxed.Put(a))
}

func TestPool_ClearKeepsCapacities(t *testing.T) {
	p := pool.New[*thing](pool.Options{})
	p.SetCapacity(2, 1)
	require.NoError(t, p.Put(newThing("x", 2)))
	require.NoError(t, p.Put(newThing("y", 0)))

	p.Clear()
	assert.Equal(t, 0, p.Count(0))
	assert.Equal(t, 0, p.Count(2))
	assert.Equal(t, 1, p.Capacity(2))
}

func TestPool_LogsDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := pool.New[*thing](pool.Options{Name: "test", Logger: zap.New(core)})
	p.SetCapacity(0, 0)

	require.NoError(t, p.Put(newThing("x", 0)))
	_, _ = p.Take(0)

	assert.Equal(t, 1, logs.FilterMessage("holder discarded, pool is full").Len())
	assert.Equal(t, 1, logs.FilterMessage("pool miss").Len())
	entry := logs.All()[0]
	assert.Equal(t, "test", entry.ContextMap()["pool"])

	stats := p.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, pool.PartitionStats{Type: 0, Idle: 0, Capacity: 0, Misses: 1, Discards: 1}, stats[0])
}
