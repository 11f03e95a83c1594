// Package reconcile keeps the mounted children of a host in step with an ordered
// collection while creating and destroying as few components as possible.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Holder: wraps one mounted component and tracks its type tag, its position in the
//    collection and whether it is currently stashed (hidden but still mounted).
//
// 2. Reconciler: the engine. Every refresh runs four phases in a fixed order:
//    stash, evict, reconcile and layout. Positions just past the end of the collection
//    are stashed rather than removed, so a collection that shrinks and grows back by a
//    few items does not churn. Everything beyond the stash window is recycled into a
//    pool and removed from the host with a single range removal.
//
// 3. ListAdapter: a reconciler driven by a slice of items. Set replaces the whole
//    collection and skips the refresh when the new slice equals the current one.
//
// Creation, binding and recycling are injected as functions on Config, so the engine is
// reused by every kind of collection without subclassing.
//
// # Usage Example
//
//	adapter, err := reconcile.NewListAdapter(reconcile.ListConfig[string]{
//	    Config: reconcile.Config{
//	        StashSize: reconcile.DefaultStashSize,
//	        Factory: func(h host.Host, typ int) (*reconcile.Holder, error) {
//	            return reconcile.NewHolder(host.NewNode("", typ))
//	        },
//	    },
//	    BindItem: func(h *reconcile.Holder, item string, position int) error {
//	        h.Component().(*host.Node).Label = item
//	        return nil
//	    },
//	})
//	_ = adapter.Attach(container)
//	_ = adapter.Set([]string{"x", "y", "z"})
//
// # Threading
//
// A Reconciler is driven from one goroutine. Callbacks must not re-enter Refresh,
// Attach or Detach.
package reconcile
