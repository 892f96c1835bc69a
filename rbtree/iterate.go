package rbtree

// Iterator is a suspended in-order traversal of a tree: a stack of nodes
// whose left spines have been descended. Since trees are immutable, an
// iterator stays valid indefinitely; restarting means simply asking the tree
// for a fresh one. The zero cost of abandoning an iterator mid-way is what
// backs the halting/suspending reduction protocol below.
type Iterator[K, V any] struct {
	stack []*node[K, V]
}

// Iterator starts an in-order traversal over t's entries.
func (t Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	it.pushLeftSpine(t.root)
	return it
}

func (it *Iterator[K, V]) pushLeftSpine(n *node[K, V]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next yields the next entry in ascending key order, or ok=false when the
// traversal is exhausted. A drained iterator keeps returning ok=false.
func (it *Iterator[K, V]) Next() (Item[K, V], bool) {
	if len(it.stack) == 0 {
		var none Item[K, V]
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)
	return n.item, true
}

// --- Reduction protocol ----------------------------------------------------

// Signal is what a reducer step returns to steer the reduction: keep going,
// stop for good, or suspend with the option to resume later.
type Signal int8

const (
	Cont Signal = iota
	Halt
	Suspend
)

// State describes how a reduction ended: the entries were drained (Done),
// the reducer halted early (Halted), or it suspended (Suspended), in which
// case the returned iterator is the continuation.
type State int8

const (
	Done State = iota
	Halted
	Suspended
)

func (s State) String() string {
	switch s {
	case Done:
		return "done"
	case Halted:
		return "halted"
	case Suspended:
		return "suspended"
	}
	return "?"
}

// Reduce drives fn over t's entries in ascending key order. fn returns the
// new accumulator plus a Signal; Halt stops without visiting the remainder
// of the tree, Suspend additionally hands back the unconsumed traversal as a
// resumable continuation (see ReduceIter). The continuation is nil unless
// the reduction suspended.
func Reduce[K, V, A any](t Tree[K, V], acc A, fn func(Item[K, V], A) (A, Signal)) (A, State, *Iterator[K, V]) {
	return ReduceIter(t.Iterator(), acc, fn)
}

// ReduceIter is Reduce over an explicit traversal state, used to resume a
// suspended reduction.
func ReduceIter[K, V, A any](it *Iterator[K, V], acc A, fn func(Item[K, V], A) (A, Signal)) (A, State, *Iterator[K, V]) {
	for {
		entry, ok := it.Next()
		if !ok {
			return acc, Done, nil
		}
		var sig Signal
		acc, sig = fn(entry, acc)
		switch sig {
		case Halt:
			return acc, Halted, nil
		case Suspend:
			return acc, Suspended, it
		}
	}
}
