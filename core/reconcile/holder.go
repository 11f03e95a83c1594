package reconcile

import "collection-adapter/core/host"

// NoPosition marks a holder that is not bound to any collection position.
const NoPosition = -1

// Holder owns one mounted component plus its positional and visibility bookkeeping.
type Holder struct {
	component host.Component

	typ      int
	position int

	stashed     bool
	beforeStash host.Visibility
}

// NewHolder wraps c. The type tag is assigned by the reconciler.
func NewHolder(c host.Component) (*Holder, error) {
	if c == nil {
		return nil, ErrNilComponent
	}
	return &Holder{component: c, position: NoPosition}, nil
}

// Component returns the wrapped component.
func (h *Holder) Component() host.Component {
	return h.component
}

// Type returns the type tag the holder was created for.
func (h *Holder) Type() int {
	return h.typ
}

// Position returns the bound collection position, or NoPosition.
func (h *Holder) Position() int {
	return h.position
}

// Stashed reports whether the component is hidden by the stash phase.
func (h *Holder) Stashed() bool {
	return h.stashed
}

// prepare restores the visibility recorded by stash.
func (h *Holder) prepare() {
	if h.stashed {
		h.stashed = false
		h.component.SetVisibility(h.beforeStash)
	}
}

// stash hides the component without unmounting it.
func (h *Holder) stash() {
	if !h.stashed {
		h.stashed = true
		h.beforeStash = h.component.Visibility()
		h.component.SetVisibility(host.Gone)
	}
}

// recycle releases the component's resources before it re-enters a pool.
func (h *Holder) recycle() {
	if r, ok := h.component.(host.Recycler); ok {
		r.Recycle()
	}
}
