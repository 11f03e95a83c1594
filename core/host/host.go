package host

import "context"

// Visibility is the display state of a mounted component.
type Visibility int

const (
	// Visible components take part in layout and are drawn.
	Visible Visibility = iota
	// Invisible components take part in layout but are not drawn.
	Invisible
	// Gone components are mounted but skipped by layout entirely.
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Component is a child that can be mounted into a Host.
type Component interface {
	Visibility() Visibility
	SetVisibility(v Visibility)
}

// Recycler is implemented by components that hold resources which must be released
// before they go back to a pool.
type Recycler interface {
	Recycle()
}

// Host is the container whose children are managed by a reconciler.
// Indexes are absolute child indexes, including any children outside the collection.
type Host interface {
	// InsertChild mounts c at index, shifting later children.
	InsertChild(c Component, index int) error
	// RemoveChild unmounts c.
	RemoveChild(c Component) error
	// RemoveChildren unmounts count children starting at start.
	RemoveChildren(start, count int) error
	// ChildCount returns the number of mounted children.
	ChildCount() int
	// RequestLayout schedules a measure/layout pass.
	RequestLayout()
	// Context is the environment handed to component factories.
	Context() context.Context
}
