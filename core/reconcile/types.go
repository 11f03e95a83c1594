package reconcile

import (
	"collection-adapter/core/host"
	"collection-adapter/core/pool"

	"go.uber.org/zap"
)

// DefaultStashSize is the number of trailing children kept hidden instead of removed.
const DefaultStashSize = 3

// TypeFunc returns the type tag required at a collection position.
type TypeFunc func(position int) int

// FactoryFunc creates a holder of the given type. It is only called on a pool miss.
type FactoryFunc func(h host.Host, typ int) (*Holder, error)

// BindFunc binds the data at position to the holder.
type BindFunc func(h *Holder, position int) error

// Config defines the strategy set of a Reconciler.
type Config struct {
	// Count returns the number of items in the collection. Required.
	Count func() int

	// TypeOf returns the type tag for a position. Defaults to a single type 0.
	TypeOf TypeFunc

	// Factory constructs new holders. Required.
	Factory FactoryFunc

	// Bind attaches data to a holder. Required.
	Bind BindFunc

	// OnPrepare runs after a holder has been made usable at a position.
	OnPrepare func(h host.Host, holder *Holder)

	// OnRecycle runs before a holder goes back to the pool.
	OnRecycle func(holder *Holder)

	// OnReport receives the summary of every completed pass.
	OnReport func(Report)

	// StashSize is how many positions past the end stay mounted but hidden.
	// Zero disables stashing.
	StashSize int

	// StartOffset is the number of host children before the collection.
	StartOffset int

	// EndOffset is the number of host children after the collection.
	EndOffset int

	// Pool stores recycled holders. If nil, New creates a private pool.
	// Sharing a pool between reconcilers also shares its capacity.
	Pool *pool.Pool[*Holder]

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Report summarises one reconciliation pass.
type Report struct {
	// ItemCount is the collection size the pass reconciled against.
	ItemCount int `json:"item_count"`

	// Stashed counts holders hidden by the stash phase.
	Stashed int `json:"stashed"`

	// Evicted counts holders recycled by the evict phase.
	Evicted int `json:"evicted"`

	// Reused counts positions whose existing holder matched the required type.
	Reused int `json:"reused"`

	// Retyped counts positions whose holder was recycled because the type changed.
	Retyped int `json:"retyped"`

	// Taken counts holders resolved from the pool.
	Taken int `json:"taken"`

	// Created counts holders built by the factory.
	Created int `json:"created"`

	// Bound counts bind calls.
	Bound int `json:"bound"`

	// RemovedStart is the host index of the batched removal, or -1 when none happened.
	RemovedStart int `json:"removed_start"`

	// RemovedCount is the number of children removed by the batched removal.
	RemovedCount int `json:"removed_count"`
}

func constantType(int) int {
	return 0
}
