package reconcile

import (
	"fmt"

	"collection-adapter/core/host"
	"collection-adapter/core/pool"

	"go.uber.org/zap"
)

// Reconciler mounts, reuses, stashes and recycles holders so that the children of a
// host mirror a collection. It is not safe for concurrent use.
type Reconciler struct {
	cfg    Config
	typeOf TypeFunc
	pool   *pool.Pool[*Holder]
	logger *zap.Logger

	host    host.Host
	holders *positionIndex

	// offsets of the last pass, used by Detach
	startOffset int
	endOffset   int

	last Report
}

// New validates cfg and returns a detached reconciler.
func New(cfg Config) (*Reconciler, error) {
	if cfg.Count == nil {
		return nil, fmt.Errorf("new reconciler: count: %w", ErrMissingCallback)
	}
	if cfg.Factory == nil {
		return nil, fmt.Errorf("new reconciler: factory: %w", ErrMissingCallback)
	}
	if cfg.Bind == nil {
		return nil, fmt.Errorf("new reconciler: bind: %w", ErrMissingCallback)
	}
	if cfg.StashSize < 0 || cfg.StartOffset < 0 || cfg.EndOffset < 0 {
		return nil, fmt.Errorf("new reconciler: stash=%d start=%d end=%d: %w",
			cfg.StashSize, cfg.StartOffset, cfg.EndOffset, ErrInvalidArgument)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	typeOf := cfg.TypeOf
	if typeOf == nil {
		typeOf = constantType
	}
	p := cfg.Pool
	if p == nil {
		p = pool.New[*Holder](pool.Options{Logger: logger})
	}

	return &Reconciler{
		cfg:         cfg,
		typeOf:      typeOf,
		pool:        p,
		logger:      logger,
		holders:     newPositionIndex(),
		startOffset: cfg.StartOffset,
		endOffset:   cfg.EndOffset,
		last:        Report{RemovedStart: -1},
	}, nil
}

// Attach connects the reconciler to h and runs a refresh. Attaching to the current
// host is a no-op; attaching to another host detaches from the current one first.
func (r *Reconciler) Attach(h host.Host) error {
	if h == nil {
		return ErrNilHost
	}
	if r.host == h {
		return nil
	}
	if r.host != nil {
		if err := r.Detach(); err != nil {
			return fmt.Errorf("attach: %w", err)
		}
	}
	r.host = h
	return r.NotifyDataChanged()
}

// Detach recycles every bound holder, removes the collection's children with one
// range removal and releases the host. Detaching when detached is a no-op.
func (r *Reconciler) Detach() error {
	h := r.host
	if h == nil {
		return nil
	}
	defer func() { r.host = nil }()

	var recycleErr error
	recycled := 0
	r.holders.ascend(func(position int, holder *Holder) {
		if err := r.recycle(holder); err != nil && recycleErr == nil {
			recycleErr = fmt.Errorf("detach: recycle position %d: %w", position, err)
		}
		recycled++
	})
	r.holders.clear()

	count := h.ChildCount() - r.endOffset - r.startOffset
	if count > 0 {
		if err := h.RemoveChildren(r.startOffset, count); err != nil {
			return fmt.Errorf("detach: remove [%d, %d): %w", r.startOffset, r.startOffset+count, err)
		}
	}

	r.logger.Debug("reconciler detached", zap.Int("recycled", recycled), zap.Int("removed", max(count, 0)))
	return recycleErr
}

// NotifyDataChanged refreshes using the configured count, type function and offsets.
// It is a no-op while detached.
func (r *Reconciler) NotifyDataChanged() error {
	if r.host == nil {
		return nil
	}
	return r.Refresh(r.cfg.Count(), r.typeOf, r.cfg.StartOffset, r.cfg.EndOffset)
}

// Refresh runs one reconciliation pass: stash, evict, reconcile and layout.
// A failure aborts the pass and leaves the work of the completed phases in place.
func (r *Reconciler) Refresh(itemCount int, typeOf TypeFunc, startOffset, endOffset int) error {
	if itemCount < 0 || startOffset < 0 || endOffset < 0 {
		return fmt.Errorf("refresh count=%d start=%d end=%d: %w", itemCount, startOffset, endOffset, ErrInvalidArgument)
	}
	h := r.host
	if h == nil {
		return nil
	}
	if typeOf == nil {
		typeOf = constantType
	}
	r.startOffset = startOffset
	r.endOffset = endOffset

	report := Report{ItemCount: itemCount, RemovedStart: -1}

	// 1. Stash the window right after the collection
	for i := 0; i < r.cfg.StashSize; i++ {
		if holder, ok := r.holders.get(itemCount + i); ok {
			if !holder.stashed {
				report.Stashed++
			}
			holder.stash()
		}
	}

	// 2. Evict everything past the stash window
	evictStart := itemCount + r.cfg.StashSize
	evictEnd := h.ChildCount() - endOffset - startOffset
	if evictStart < evictEnd {
		for i := evictStart; i < evictEnd; i++ {
			holder, ok := r.holders.get(i)
			if !ok {
				continue
			}
			if err := r.recycle(holder); err != nil {
				return &PositionError{Op: "recycle", Position: i, Count: itemCount, Err: err}
			}
			r.holders.delete(i)
			report.Evicted++
		}
		if err := h.RemoveChildren(evictStart+startOffset, evictEnd-evictStart); err != nil {
			return fmt.Errorf("evict [%d, %d): %w", evictStart, evictEnd, err)
		}
		report.RemovedStart = evictStart + startOffset
		report.RemovedCount = evictEnd - evictStart
	}

	// 3. Resolve and bind a holder for every position
	for i := 0; i < itemCount; i++ {
		holder, err := r.holderForPosition(h, i, typeOf(i), itemCount, startOffset, &report)
		if err != nil {
			return err
		}
		if err := r.cfg.Bind(holder, i); err != nil {
			return &PositionError{Op: "bind", Position: i, Count: itemCount, Err: err}
		}
		holder.position = i
		report.Bound++
	}

	// 4. One layout request per pass
	h.RequestLayout()

	r.last = report
	r.logger.Debug("reconciliation pass",
		zap.Int("items", report.ItemCount),
		zap.Int("stashed", report.Stashed),
		zap.Int("evicted", report.Evicted),
		zap.Int("reused", report.Reused),
		zap.Int("retyped", report.Retyped),
		zap.Int("taken", report.Taken),
		zap.Int("created", report.Created),
	)
	if r.cfg.OnReport != nil {
		r.cfg.OnReport(report)
	}
	return nil
}

// holderForPosition returns a prepared holder of type typ mounted at position,
// reusing the current one when its type matches.
func (r *Reconciler) holderForPosition(h host.Host, position, typ, count, startOffset int, report *Report) (*Holder, error) {
	if holder, ok := r.holders.get(position); ok {
		if holder.typ == typ {
			r.prepare(h, holder)
			report.Reused++
			return holder, nil
		}
		if err := r.recycle(holder); err != nil {
			return nil, &PositionError{Op: "recycle", Position: position, Count: count, Err: err}
		}
		if err := h.RemoveChild(holder.component); err != nil {
			return nil, &PositionError{Op: "remove", Position: position, Count: count, Err: err}
		}
		r.holders.delete(position)
		report.Retyped++
	}

	holder, err := r.acquire(h, typ, report)
	if err != nil {
		return nil, &PositionError{Op: "create", Position: position, Count: count, Err: err}
	}
	if err := h.InsertChild(holder.component, position+startOffset); err != nil {
		return nil, &PositionError{Op: "insert", Position: position, Count: count, Err: err}
	}
	r.prepare(h, holder)
	r.holders.set(position, holder)
	return holder, nil
}

// acquire takes a holder of typ from the pool or builds one with the factory.
func (r *Reconciler) acquire(h host.Host, typ int, report *Report) (*Holder, error) {
	if holder, ok := r.pool.Take(typ); ok {
		report.Taken++
		return holder, nil
	}
	holder, err := r.cfg.Factory(h, typ)
	if err != nil {
		return nil, err
	}
	if holder == nil || holder.component == nil {
		return nil, ErrNilHolder
	}
	holder.typ = typ
	holder.position = NoPosition
	report.Created++
	r.logger.Debug("holder created by factory", zap.Int("type", typ))
	return holder, nil
}

func (r *Reconciler) prepare(h host.Host, holder *Holder) {
	holder.prepare()
	if r.cfg.OnPrepare != nil {
		r.cfg.OnPrepare(h, holder)
	}
}

// recycle runs the hooks, unbinds the holder and offers it to the pool.
func (r *Reconciler) recycle(holder *Holder) error {
	if r.cfg.OnRecycle != nil {
		r.cfg.OnRecycle(holder)
	}
	holder.recycle()
	holder.position = NoPosition
	return r.pool.Put(holder)
}

// Holder returns the holder bound at position.
func (r *Reconciler) Holder(position int) (*Holder, bool) {
	return r.holders.get(position)
}

// Positions returns the positions that currently have a holder, in ascending order.
// Stashed positions are included.
func (r *Reconciler) Positions() []int {
	return r.holders.positions()
}

// Pool returns the pool recycled holders go to.
func (r *Reconciler) Pool() *pool.Pool[*Holder] {
	return r.pool
}

// Host returns the attached host, or nil.
func (r *Reconciler) Host() host.Host {
	return r.host
}

// Attached reports whether a host is attached.
func (r *Reconciler) Attached() bool {
	return r.host != nil
}

// StashSize returns the configured stash window.
func (r *Reconciler) StashSize() int {
	return r.cfg.StashSize
}

// LastReport returns the summary of the last completed pass.
func (r *Reconciler) LastReport() Report {
	return r.last
}
