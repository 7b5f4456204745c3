package dstar

import "container/heap"

// node is the per-cell search state stored in the planner's flat arena.
type node struct {
	tag    Tag
	h      float64
	k      float64
	parent int    // arena index of the backpointer, or noParent
	pos    int    // position inside the frontier heap, -1 when absent
	seq    uint64 // push order, breaks ties between equal keys
}

// frontier is a min-heap of arena indices ordered by node.k, then push order.
// Keys are never decreased in place: a changed key is applied by remove
// followed by push.
//
// TODO: a decrease-key aware structure would avoid the remove/push pair for
// OPEN reinserts without changing expansion order.
type frontier struct {
	items []int
	arena []node
	seq   uint64
}

func newFrontier(arena []node) *frontier {
	return &frontier{arena: arena}
}

// Len returns the number of queued cells.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by smaller k; equal keys pop in push order.
func (f *frontier) Less(i, j int) bool {
	a, b := &f.arena[f.items[i]], &f.arena[f.items[j]]
	if a.k != b.k {
		return a.k < b.k
	}

	return a.seq < b.seq
}

// Swap swaps two heap slots and keeps node.pos in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.arena[f.items[i]].pos = i
	f.arena[f.items[j]].pos = j
}

// Push appends an arena index; called by heap.Push.
func (f *frontier) Push(x interface{}) {
	idx := x.(int)
	f.arena[idx].pos = len(f.items)
	f.items = append(f.items, idx)
}

// Pop removes the last slot; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	idx := old[n-1]
	f.items = old[:n-1]
	f.arena[idx].pos = -1

	return idx
}

// push queues idx with its current key.
func (f *frontier) push(idx int) {
	f.seq++
	f.arena[idx].seq = f.seq
	heap.Push(f, idx)
}

// popMin removes and returns the minimum-key index.
func (f *frontier) popMin() int {
	return heap.Pop(f).(int)
}

// remove drops idx if it is queued.
func (f *frontier) remove(idx int) {
	if p := f.arena[idx].pos; p >= 0 {
		heap.Remove(f, p)
	}
}

// peek returns the minimum-key index without removing it; ok is false
// when the frontier is empty.
func (f *frontier) peek() (int, bool) {
	if len(f.items) == 0 {
		return 0, false
	}

	return f.items[0], true
}
