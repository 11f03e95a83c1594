// Package pool provides a capacity-bounded object pool partitioned by type tag.
//
// Each partition is a LIFO stack of idle items plus a maximum capacity. Taking an item
// returns the one that was put most recently, which tends to be the one whose wrapped
// resources are still warm. Putting an item into a full partition silently drops it;
// the owner is then free to let it be garbage collected.
//
// # Usage
//
//	p := pool.New[*reconcile.Holder](pool.Options{DefaultCapacity: 5, Logger: log})
//	p.SetCapacity(1, 2)
//	if h, ok := p.Take(1); ok {
//	    // reuse h
//	}
//	_ = p.Put(h)
//
// A Pool is not safe for concurrent use. Callers sharing one pool between several owners
// must serialise access and accept that capacity is then shared as well.
package pool
