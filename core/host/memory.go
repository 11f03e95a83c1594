package host

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the child list.
	ErrIndexOutOfRange = errors.New("child index out of range")
	// ErrChildNotFound is returned when removing a component that is not mounted.
	ErrChildNotFound = errors.New("child not found")
	// ErrNilChild is returned when inserting a nil component.
	ErrNilChild = errors.New("child is nil")
)

// OpKind names a recorded host mutation.
type OpKind string

const (
	OpInsert      OpKind = "insert"
	OpRemove      OpKind = "remove"
	OpRemoveRange OpKind = "remove_range"
	OpLayout      OpKind = "layout"
)

// Op is one entry of the Memory journal.
type Op struct {
	Kind  OpKind `json:"kind"`
	Index int    `json:"index"`
	Count int    `json:"count"`
}

// Stats counts the mutations a Memory host received.
type Stats struct {
	Inserts       int `json:"inserts"`
	Removes       int `json:"removes"`
	RangeRemovals int `json:"range_removals"`
	Layouts       int `json:"layouts"`
}

// Memory is an in-memory Host. It keeps children in a slice and journals every call.
// It is not safe for concurrent use.
type Memory struct {
	ctx      context.Context
	children []Component
	journal  []Op
	stats    Stats
}

// NewMemory creates a host pre-populated with children. Those children are usually
// headers or footers the collection must leave alone.
func NewMemory(ctx context.Context, children ...Component) *Memory {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Memory{ctx: ctx}
	m.children = append(m.children, children...)
	return m
}

// InsertChild implements Host.
func (m *Memory) InsertChild(c Component, index int) error {
	if c == nil {
		return ErrNilChild
	}
	if index < 0 || index > len(m.children) {
		return fmt.Errorf("insert at %d of %d: %w", index, len(m.children), ErrIndexOutOfRange)
	}
	m.children = append(m.children, nil)
	copy(m.children[index+1:], m.children[index:])
	m.children[index] = c
	m.stats.Inserts++
	m.journal = append(m.journal, Op{Kind: OpInsert, Index: index, Count: 1})
	return nil
}

// RemoveChild implements Host.
func (m *Memory) RemoveChild(c Component) error {
	index := m.IndexOf(c)
	if index < 0 {
		return ErrChildNotFound
	}
	m.children = append(m.children[:index], m.children[index+1:]...)
	m.stats.Removes++
	m.journal = append(m.journal, Op{Kind: OpRemove, Index: index, Count: 1})
	return nil
}

// RemoveChildren implements Host.
func (m *Memory) RemoveChildren(start, count int) error {
	if start < 0 || count < 0 || start+count > len(m.children) {
		return fmt.Errorf("remove [%d, %d) of %d: %w", start, start+count, len(m.children), ErrIndexOutOfRange)
	}
	m.children = append(m.children[:start], m.children[start+count:]...)
	m.stats.RangeRemovals++
	m.journal = append(m.journal, Op{Kind: OpRemoveRange, Index: start, Count: count})
	return nil
}

// ChildCount implements Host.
func (m *Memory) ChildCount() int {
	return len(m.children)
}

// RequestLayout implements Host.
func (m *Memory) RequestLayout() {
	m.stats.Layouts++
	m.journal = append(m.journal, Op{Kind: OpLayout})
}

// Context implements Host.
func (m *Memory) Context() context.Context {
	return m.ctx
}

// Child returns the component at index.
func (m *Memory) Child(index int) (Component, bool) {
	if index < 0 || index >= len(m.children) {
		return nil, false
	}
	return m.children[index], true
}

// Children returns a copy of the mounted children in order.
func (m *Memory) Children() []Component {
	out := make([]Component, len(m.children))
	copy(out, m.children)
	return out
}

// IndexOf returns the index of c, or -1.
func (m *Memory) IndexOf(c Component) int {
	for i, child := range m.children {
		if child == c {
			return i
		}
	}
	return -1
}

// Journal returns a copy of the recorded operations.
func (m *Memory) Journal() []Op {
	out := make([]Op, len(m.journal))
	copy(out, m.journal)
	return out
}

// Stats returns the mutation counters.
func (m *Memory) Stats() Stats {
	return m.stats
}

// ResetJournal clears the journal and counters, keeping the children.
func (m *Memory) ResetJournal() {
	m.journal = nil
	m.stats = Stats{}
}
