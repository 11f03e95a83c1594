package reconcile

import (
	"fmt"
	"reflect"
	"slices"

	"collection-adapter/core/host"
)

// ListConfig configures a ListAdapter. Count and Bind of the embedded Config are
// supplied by the adapter and ignored if set.
type ListConfig[T any] struct {
	Config

	// BindItem binds one item to the holder at position. Required.
	BindItem func(h *Holder, item T, position int) error

	// ItemType derives the type tag from an item. When set it replaces Config.TypeOf.
	ItemType func(item T) int

	// Equal reports whether two collections are the same. Defaults to an
	// element-wise reflect.DeepEqual.
	Equal func(a, b []T) bool
}

// ListAdapter drives a Reconciler from a slice of items.
type ListAdapter[T any] struct {
	items    []T
	bindItem func(h *Holder, item T, position int) error
	equal    func(a, b []T) bool
	r        *Reconciler
}

// NewListAdapter builds a detached adapter with an empty collection.
func NewListAdapter[T any](cfg ListConfig[T]) (*ListAdapter[T], error) {
	if cfg.BindItem == nil {
		return nil, fmt.Errorf("new list adapter: bind item: %w", ErrMissingCallback)
	}
	a := &ListAdapter[T]{
		bindItem: cfg.BindItem,
		equal:    cfg.Equal,
	}
	if a.equal == nil {
		a.equal = equalItems[T]
	}

	rc := cfg.Config
	rc.Count = a.Count
	rc.Bind = a.bind
	if cfg.ItemType != nil {
		itemType := cfg.ItemType
		rc.TypeOf = func(position int) int {
			return itemType(a.items[position])
		}
	}

	r, err := New(rc)
	if err != nil {
		return nil, err
	}
	a.r = r
	return a, nil
}

// Set replaces the collection. Nothing happens when the new items equal the current
// ones; otherwise a refresh runs if the adapter is attached.
func (a *ListAdapter[T]) Set(items []T) error {
	if len(items) == 0 {
		if len(a.items) == 0 {
			return nil
		}
		a.items = nil
		return a.r.NotifyDataChanged()
	}
	if a.equal(a.items, items) {
		return nil
	}
	a.items = slices.Clone(items)
	return a.r.NotifyDataChanged()
}

// Items returns a copy of the collection.
func (a *ListAdapter[T]) Items() []T {
	return slices.Clone(a.items)
}

// Item returns the item at position.
func (a *ListAdapter[T]) Item(position int) (T, bool) {
	if position < 0 || position >= len(a.items) {
		var zero T
		return zero, false
	}
	return a.items[position], true
}

// Count returns the number of items.
func (a *ListAdapter[T]) Count() int {
	return len(a.items)
}

// Attach connects the adapter to h and binds the current items.
func (a *ListAdapter[T]) Attach(h host.Host) error {
	return a.r.Attach(h)
}

// Detach recycles all holders and releases the host.
func (a *ListAdapter[T]) Detach() error {
	return a.r.Detach()
}

// NotifyDataChanged forces a refresh even when the items did not change.
func (a *ListAdapter[T]) NotifyDataChanged() error {
	return a.r.NotifyDataChanged()
}

// Reconciler exposes the underlying engine.
func (a *ListAdapter[T]) Reconciler() *Reconciler {
	return a.r
}

func (a *ListAdapter[T]) bind(h *Holder, position int) error {
	if position < 0 || position >= len(a.items) {
		return ErrPositionOutOfRange
	}
	item := a.items[position]
	if isNil(item) {
		return ErrNilItem
	}
	return a.bindItem(h, item, position)
}

func equalItems[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
