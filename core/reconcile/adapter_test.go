package reconcile

import (
	"context"
	"testing"

	"collection-adapter/core/host"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   int
	Name string
}

func newEntryAdapter(t *testing.T, refreshes *int) *ListAdapter[*entry] {
	t.Helper()
	adapter, err := NewListAdapter(ListConfig[*entry]{
		Config: Config{
			StashSize: DefaultStashSize,
			Factory: func(h host.Host, typ int) (*Holder, error) {
				return NewHolder(host.NewNode("", typ))
			},
			OnReport: func(Report) { *refreshes++ },
		},
		BindItem: func(h *Holder, item *entry, position int) error {
			h.Component().(*host.Node).Label = item.Name
			return nil
		},
	})
	require.NoError(t, err)
	return adapter
}

func TestListAdapter_SetEqualIsNoop(t *testing.T) {
	refreshes := 0
	adapter := newEntryAdapter(t, &refreshes)
	m := host.NewMemory(context.Background())
	require.NoError(t, adapter.Attach(m))
	assert.Equal(t, 1, refreshes)

	require.NoError(t, adapter.Set([]*entry{{1, "a"}, {2, "b"}}))
	assert.Equal(t, 2, refreshes)

	// distinct instances comparing equal never trigger a refresh
	for i := 0; i < 3; i++ {
		require.NoError(t, adapter.Set([]*entry{{1, "a"}, {2, "b"}}))
	}
	assert.Equal(t, 2, refreshes)
	assert.Equal(t, 2, m.Stats().Layouts)

	require.NoError(t, adapter.Set([]*entry{{1, "a"}, {2, "c"}}))
	assert.Equal(t, 3, refreshes)
}

func TestListAdapter_EmptyInput(t *testing.T) {
	refreshes := 0
	adapter := newEntryAdapter(t, &refreshes)
	require.NoError(t, adapter.Attach(host.NewMemory(context.Background())))

	require.NoError(t, adapter.Set(nil))
	require.NoError(t, adapter.Set([]*entry{}))
	assert.Equal(t, 1, refreshes, "empty input on an empty collection is a no-op")

	require.NoError(t, adapter.Set([]*entry{{1, "a"}}))
	require.NoError(t, adapter.Set(nil))
	assert.Equal(t, 3, refreshes)
	assert.Equal(t, 0, adapter.Count())
}

func TestListAdapter_CopiesInput(t *testing.T) {
	refreshes := 0
	adapter := newEntryAdapter(t, &refreshes)
	items := []*entry{{1, "a"}, {2, "b"}}
	require.NoError(t, adapter.Set(items))

	items[0] = &entry{9, "z"}
	got, ok := adapter.Item(0)
	require.True(t, ok)
	assert.Equal(t, "a", got.Name)

	out := adapter.Items()
	out[1] = nil
	got, _ = adapter.Item(1)
	assert.NotNil(t, got)

	_, ok = adapter.Item(2)
	assert.False(t, ok)
	assert.Equal(t, 0, refreshes, "no refresh while detached")
}

func TestListAdapter_CustomEqual(t *testing.T) {
	calls := 0
	adapter, err := NewListAdapter(ListConfig[string]{
		Config: Config{
			Factory: func(h host.Host, typ int) (*Holder, error) {
				return NewHolder(host.NewNode("", typ))
			},
		},
		BindItem: func(*Holder, string, int) error {
			calls++
			return nil
		},
		Equal: func(a, b []string) bool { return len(a) == len(b) },
	})
	require.NoError(t, err)
	require.NoError(t, adapter.Attach(host.NewMemory(context.Background())))

	require.NoError(t, adapter.Set([]string{"a"}))
	require.NoError(t, adapter.Set([]string{"b"}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"a"}, adapter.Items())
}

func TestListAdapter_RequiresBindItem(t *testing.T) {
	_, err := NewListAdapter(ListConfig[string]{})
	assert.ErrorIs(t, err, ErrMissingCallback)
}

func TestIsNil(t *testing.T) {
	var p *entry
	var m map[string]int
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"nil pointer", p, true},
		{"nil map", m, true},
		{"pointer", &entry{}, false},
		{"string", "", false},
		{"zero int", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNil(tt.v))
		})
	}
}
