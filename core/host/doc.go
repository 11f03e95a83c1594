// Package host defines the container contract the reconciler mounts children into.
//
// The reconciler never renders anything itself. It asks a Host to insert, remove and
// count children, and to run a single layout pass once a refresh completes. Any visual
// technology (a widget tree, a terminal layout, a DOM bridge) can sit behind the
// interface.
//
// # Components
//
//   - Host: the consumed capability set (insert, remove, range remove, count, relayout,
//     environment context).
//   - Component: a mounted child whose visibility can be toggled without unmounting it.
//   - Memory: an in-memory Host that records every mutation. It backs the HTTP sessions,
//     the scenario runner and most tests.
//
// # Offsets
//
// A Host may carry children that are not owned by the collection, such as a header
// before it or a "show more" footer after it. Memory supports these through its leading
// and trailing fixed nodes; the reconciler is told about them via start/end offsets.
package host
