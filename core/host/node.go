package host

// Node is a labelled component used by the in-memory host.
type Node struct {
	// ID identifies the node across rebinds.
	ID string
	// Label is the text the node currently displays.
	Label string
	// Kind is the type tag the node was built for.
	Kind int

	visibility Visibility
	recycles   int
}

// NewNode creates a visible node.
func NewNode(label string, kind int) *Node {
	return &Node{Label: label, Kind: kind}
}

// Visibility implements Component.
func (n *Node) Visibility() Visibility {
	return n.visibility
}

// SetVisibility implements Component.
func (n *Node) SetVisibility(v Visibility) {
	n.visibility = v
}

// Recycle implements Recycler. The label is kept so reuse stays observable.
func (n *Node) Recycle() {
	n.recycles++
}

// Recycles reports how many times the node went through Recycle.
func (n *Node) Recycles() int {
	return n.recycles
}
