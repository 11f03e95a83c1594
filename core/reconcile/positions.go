package reconcile

import "github.com/google/btree"

type slot struct {
	position int
	holder   *Holder
}

// positionIndex maps collection positions to bound holders.
type positionIndex struct {
	tree *btree.BTreeG[slot]
}

func newPositionIndex() *positionIndex {
	return &positionIndex{
		tree: btree.NewG(16, func(a, b slot) bool { return a.position < b.position }),
	}
}

func (p *positionIndex) get(position int) (*Holder, bool) {
	s, ok := p.tree.Get(slot{position: position})
	if !ok {
		return nil, false
	}
	return s.holder, true
}

func (p *positionIndex) set(position int, h *Holder) {
	p.tree.ReplaceOrInsert(slot{position: position, holder: h})
}

func (p *positionIndex) delete(position int) {
	p.tree.Delete(slot{position: position})
}

func (p *positionIndex) len() int {
	return p.tree.Len()
}

// ascend visits every slot in position order.
func (p *positionIndex) ascend(fn func(position int, h *Holder)) {
	p.tree.Ascend(func(s slot) bool {
		fn(s.position, s.holder)
		return true
	})
}

func (p *positionIndex) positions() []int {
	out := make([]int, 0, p.tree.Len())
	p.ascend(func(position int, _ *Holder) {
		out = append(out, position)
	})
	return out
}

func (p *positionIndex) clear() {
	p.tree.Clear(false)
}
