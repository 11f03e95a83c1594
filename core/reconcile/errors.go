package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHost is returned when attaching to a nil host.
	ErrNilHost = errors.New("host is nil")
	// ErrNilComponent is returned when a holder is built around a nil component.
	ErrNilComponent = errors.New("component is nil")
	// ErrNilHolder is returned when the factory produced no holder.
	ErrNilHolder = errors.New("factory returned nil holder")
	// ErrNilItem is returned when binding a position whose item is nil.
	ErrNilItem = errors.New("item is nil")
	// ErrPositionOutOfRange is returned when binding a position the collection does not have.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrInvalidArgument is returned for negative counts, offsets or stash sizes.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingCallback is returned by New when a required callback is not set.
	ErrMissingCallback = errors.New("required callback not set")
)

// PositionError reports a failure while resolving or binding one position.
type PositionError struct {
	// Op is the step that failed (e.g., "bind", "insert", "create").
	Op string
	// Position is the collection position being processed.
	Position int
	// Count is the item count of the pass.
	Count int
	// Err is the underlying error.
	Err error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s position %d of %d: %v", e.Op, e.Position, e.Count, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}
