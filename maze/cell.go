package maze

import (
	"fmt"
	"slices"
)

// cellID indexes a live cell in the forest arena.
type cellID int32

const noCell cellID = -1

// cell is a live, not yet written maze cell. Cells of one set form a max-heap
// ordered by coordinate in which every cell has at most N children.
type cell struct {
	pos      int // flat coordinate index
	parent   cellID
	children []cellID
	bounds   Bounds
}

// forest tracks the disjoint sets of live cells. Closed cells leave the arena
// and their slot is reused, so nothing outside the forest holds a cellID across
// a removal. Neighbour links are resolved by coordinate through byPos.
type forest struct {
	branching int
	cells     []cell
	free      []cellID
	byPos     map[int]cellID
	roots     rootSet
	moved     int

	validate bool
	err      error
}

func newForest(branching int, validate bool) *forest {
	return &forest{
		branching: branching,
		byPos:     make(map[int]cellID),
		roots:     newRootSet(),
		validate:  validate,
	}
}

// add creates a live singleton set for pos.
func (f *forest) add(pos int, bounds Bounds) cellID {
	c := cell{pos: pos, parent: noCell, bounds: bounds}
	var id cellID
	if n := len(f.free); n > 0 {
		id = f.free[n-1]
		f.free = f.free[:n-1]
		f.cells[id] = c
	} else {
		id = cellID(len(f.cells))
		f.cells = append(f.cells, c)
	}
	f.byPos[pos] = id
	f.roots.add(id)
	return id
}

// release drops a detached cell from the arena.
func (f *forest) release(id cellID) {
	delete(f.byPos, f.cells[id].pos)
	f.cells[id] = cell{parent: noCell}
	f.free = append(f.free, id)
	f.check()
}

func (f *forest) lookup(pos int) (cellID, bool) {
	id, ok := f.byPos[pos]
	return id, ok
}

func (f *forest) live() int {
	return len(f.byPos)
}

func (f *forest) parent(id cellID) cellID {
	return f.cells[id].parent
}

func (f *forest) children(id cellID) []cellID {
	return f.cells[id].children
}

// compare orders two cells by coordinate.
func (f *forest) compare(a, b cellID) int {
	pa, pb := f.cells[a].pos, f.cells[b].pos
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

func (f *forest) root(id cellID) cellID {
	for f.cells[id].parent != noCell {
		id = f.cells[id].parent
	}
	return id
}

func (f *forest) sameSet(a, b cellID) bool {
	return f.root(a) == f.root(b)
}

func (f *forest) maxChild(id cellID) cellID {
	best := noCell
	for _, k := range f.cells[id].children {
		if best == noCell || f.compare(k, best) > 0 {
			best = k
		}
	}
	return best
}

func (f *forest) minChild(id cellID) cellID {
	best := noCell
	for _, k := range f.cells[id].children {
		if best == noCell || f.compare(k, best) < 0 {
			best = k
		}
	}
	return best
}

// attach makes child a child of parent. child must be detached.
func (f *forest) attach(parent, child cellID) {
	f.roots.remove(child)
	f.cells[child].parent = parent
	f.cells[parent].children = append(f.cells[parent].children, child)
}

// detach cuts child loose from its parent. The caller decides whether it
// becomes a root.
func (f *forest) detach(child cellID) {
	p := f.cells[child].parent
	if p == noCell {
		return
	}
	f.cells[p].children = slices.DeleteFunc(f.cells[p].children, func(k cellID) bool { return k == child })
	f.cells[child].parent = noCell
}

// replaceChild puts next where old sat in old's parent or in the roots.
func (f *forest) replaceChild(old, next cellID) {
	gp := f.cells[old].parent
	f.cells[next].parent = gp
	if gp == noCell {
		f.roots.replace(old, next)
		return
	}
	ks := f.cells[gp].children
	for i, k := range ks {
		if k == old {
			ks[i] = next
			return
		}
	}
}

// swapWithChild exchanges p with its child c.
func (f *forest) swapWithChild(p, c cellID) {
	siblings := make([]cellID, 0, len(f.cells[p].children))
	for _, k := range f.cells[p].children {
		if k != c {
			siblings = append(siblings, k)
		}
	}
	grandchildren := f.cells[c].children

	f.replaceChild(p, c)
	f.cells[c].children = append(siblings, p)
	for _, k := range siblings {
		f.cells[k].parent = c
	}
	f.cells[p].parent = c
	f.cells[p].children = grandchildren
	for _, k := range grandchildren {
		f.cells[k].parent = p
	}
}

func (f *forest) siftDown(id cellID) {
	for {
		m := f.maxChild(id)
		if m == noCell || f.compare(id, m) > 0 {
			return
		}
		f.swapWithChild(id, m)
	}
}

func (f *forest) siftUp(id cellID) {
	for p := f.cells[id].parent; p != noCell && f.compare(id, p) > 0; p = f.cells[id].parent {
		f.swapWithChild(p, id)
	}
}

// sortSet restores heap order around id.
func (f *forest) sortSet(id cellID) {
	f.siftDown(id)
	f.siftUp(id)
}

// cellToAddChildTo finds the attachment point for a new member of root's set.
// Full cells are passed through toward the fullest child that still has room,
// smallest coordinate first on ties, or the smallest child when all are full.
func (f *forest) cellToAddChildTo(root cellID) cellID {
	cur := root
	for len(f.cells[cur].children) >= f.branching {
		best := noCell
		for _, k := range f.cells[cur].children {
			n := len(f.cells[k].children)
			if n >= f.branching {
				continue
			}
			if best == noCell {
				best = k
				continue
			}
			bn := len(f.cells[best].children)
			if n > bn || (n == bn && f.compare(k, best) < 0) {
				best = k
			}
		}
		if best == noCell {
			best = f.minChild(cur)
		}
		cur = best
	}
	return cur
}

// lastInSet finds the leaf that leaves a set first. It descends through the
// non-leaf child with the fewest children, falling back to the first leaf child.
func (f *forest) lastInSet(root cellID) cellID {
	cur := root
	for len(f.cells[cur].children) > 0 {
		pick := noCell
		for _, k := range f.cells[cur].children {
			n := len(f.cells[k].children)
			if n == 0 {
				continue
			}
			if pick == noCell || n < len(f.cells[pick].children) {
				pick = k
			}
		}
		if pick == noCell {
			pick = f.cells[cur].children[0]
		}
		cur = pick
	}
	return cur
}

// rebalance refills an underfull cell from its largest child and spreads an
// overfull cell's smallest children over siblings with room.
func (f *forest) rebalance(id cellID) {
	for id != noCell {
		if len(f.cells[id].children) == 0 {
			return
		}
		next := noCell

		if len(f.cells[id].children) < f.branching {
			src := f.maxChild(id)
			for len(f.cells[id].children) < f.branching && len(f.cells[src].children) > 0 {
				g := f.maxChild(src)
				f.detach(g)
				f.attach(id, g)
			}
			if len(f.cells[src].children) > 0 {
				next = src
			}
		}

		for len(f.cells[id].children) > f.branching {
			low := f.minChild(id)
			f.detach(low)
			dst := noCell
			for _, k := range f.cells[id].children {
				n := len(f.cells[k].children)
				if n < f.branching && (dst == noCell || n > len(f.cells[dst].children)) {
					dst = k
				}
			}
			if dst == noCell {
				dst = f.minChild(id)
			}
			f.attach(dst, low)
			if len(f.cells[dst].children) > f.branching {
				next = dst
			}
		}

		id = next
	}
}

// remove takes id out of its set, leaving it detached. The set's last leaf
// fills the hole.
func (f *forest) remove(id cellID) {
	c := &f.cells[id]
	if c.parent == noCell && len(c.children) == 0 {
		f.roots.remove(id)
		return
	}

	last := f.lastInSet(f.root(id))
	lastParent := f.cells[last].parent
	f.detach(last)
	if last == id {
		f.rebalance(lastParent)
		return
	}

	kids := f.cells[id].children
	f.replaceChild(id, last)
	f.cells[last].children = kids
	for _, k := range kids {
		f.cells[k].parent = last
	}
	f.cells[id].parent = noCell
	f.cells[id].children = nil

	f.sortSet(last)
	if lastParent != id {
		f.rebalance(lastParent)
	} else {
		f.rebalance(last)
	}
}

// detachLeaf drops a leaf without rebalancing. Used when a whole set is being
// written out bottom-up.
func (f *forest) detachLeaf(id cellID) {
	if f.cells[id].parent == noCell {
		f.roots.remove(id)
		return
	}
	f.detach(id)
}

// moveInto moves the leaf id from its own set into the set containing target.
func (f *forest) moveInto(target, id cellID) {
	p := f.cells[id].parent
	if p == noCell {
		f.roots.remove(id)
	} else {
		f.detach(id)
		f.rebalance(p)
	}
	f.attach(f.cellToAddChildTo(f.root(target)), id)
	f.siftUp(id)
	f.moved++
}

// merge joins the sets of target and other by moving the cells of the smaller
// set into the larger one, one leaf at a time. It reports whether the sets were
// distinct.
func (f *forest) merge(target, other cellID) bool {
	rt, ro := f.root(target), f.root(other)
	if rt == ro {
		return false
	}
	defer f.check()

	if f.fewer(rt, ro) {
		rt, ro = ro, rt
	}
	for !f.sameSet(ro, rt) {
		f.moveInto(rt, f.lastInSet(f.root(ro)))
	}
	return true
}

// fewer reports whether the tree under a holds strictly fewer cells than the
// tree under b. Both are walked in step, so the cost follows the smaller one.
func (f *forest) fewer(a, b cellID) bool {
	sa, sb := []cellID{a}, []cellID{b}
	for {
		if len(sb) == 0 {
			return false
		}
		if len(sa) == 0 {
			return true
		}
		sa = f.expand(sa)
		sb = f.expand(sb)
	}
}

// expand pops one cell off a walk stack and pushes its children.
func (f *forest) expand(stack []cellID) []cellID {
	id := stack[len(stack)-1]
	return append(stack[:len(stack)-1], f.cells[id].children...)
}

// check records the first invariant violation when validation is on.
func (f *forest) check() {
	if !f.validate || f.err != nil {
		return
	}
	f.err = f.verify()
}

// verify checks branching, heap order, link symmetry and the root registry.
func (f *forest) verify() error {
	roots := 0
	for pos, id := range f.byPos {
		c := f.cells[id]
		if c.pos != pos {
			return fmt.Errorf("cell %d indexed at %d but holds %d", id, pos, c.pos)
		}
		if len(c.children) > f.branching {
			return fmt.Errorf("cell %d has %d children, limit %d", pos, len(c.children), f.branching)
		}
		for _, k := range c.children {
			if f.cells[k].parent != id {
				return fmt.Errorf("child %d of %d points at another parent", f.cells[k].pos, pos)
			}
			if f.compare(k, id) >= 0 {
				return fmt.Errorf("child %d not below parent %d", f.cells[k].pos, pos)
			}
		}
		if c.parent == noCell {
			roots++
			if !f.roots.has(id) {
				return fmt.Errorf("root %d missing from root set", pos)
			}
			continue
		}
		if !slices.Contains(f.cells[c.parent].children, id) {
			return fmt.Errorf("cell %d missing from its parent's children", pos)
		}
	}
	if roots != f.roots.len() {
		return fmt.Errorf("root set holds %d cells, forest has %d roots", f.roots.len(), roots)
	}
	return nil
}

// rootSet is an indexed set of set roots supporting O(1) removal and random pick.
type rootSet struct {
	ids []cellID
	at  map[cellID]int
}

func newRootSet() rootSet {
	return rootSet{at: make(map[cellID]int)}
}

func (r *rootSet) len() int {
	return len(r.ids)
}

func (r *rootSet) has(id cellID) bool {
	_, ok := r.at[id]
	return ok
}

func (r *rootSet) get(i int) cellID {
	return r.ids[i]
}

func (r *rootSet) add(id cellID) {
	if r.has(id) {
		return
	}
	r.at[id] = len(r.ids)
	r.ids = append(r.ids, id)
}

func (r *rootSet) remove(id cellID) {
	i, ok := r.at[id]
	if !ok {
		return
	}
	last := len(r.ids) - 1
	r.ids[i] = r.ids[last]
	r.at[r.ids[i]] = i
	r.ids = r.ids[:last]
	delete(r.at, id)
}

func (r *rootSet) replace(old, next cellID) {
	i, ok := r.at[old]
	if !ok {
		r.add(next)
		return
	}
	delete(r.at, old)
	r.ids[i] = next
	r.at[next] = i
}

// compactRoots drops entries that gained a parent.
func (f *forest) compactRoots() {
	for i := 0; i < f.roots.len(); {
		id := f.roots.get(i)
		if f.cells[id].parent != noCell {
			f.roots.remove(id)
			continue
		}
		i++
	}
}
