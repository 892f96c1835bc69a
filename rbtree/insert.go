package rbtree

// Outcome reports what an insertion did: create a fresh entry, or overwrite
// an entry whose key compared equal to the inserted one.
type Outcome int8

const (
	NewEntry Outcome = iota
	Overwritten
)

func (o Outcome) String() string {
	if o == NewEntry {
		return "new"
	}
	return "overwritten"
}

// Insert returns a copy of a tree with a new entry inserted. If an entry
// comparing equal to key is already present, its payload is replaced (in a
// new incarnation of the tree, nevertheless) and the stored key adopts the
// newly inserted representation; the returned Outcome tells the two cases
// apart. Insert never fails.
//
// O(log n) comparisons and O(log n) new nodes; all nodes off the search path
// are shared with t.
func (t Tree[K, V]) Insert(key K, value V) (Tree[K, V], Outcome) {
	order := t.ordering()
	root, outcome := insert(order, t.root, Item[K, V]{Key: key, Value: value})
	size := t.size
	if outcome == NewEntry {
		size++
	}
	tracer().Debugf("insert: key=%v -> %s", key, outcome)
	return t.derive(blacken(root), size), outcome
}

// insert descends to the insertion point and re-balances on the way back up.
// The returned subtree may have a red root; the caller blackens the final
// root unconditionally.
func insert[K, V any](order Ordering[K], n *node[K, V], it Item[K, V]) (*node[K, V], Outcome) {
	if n == nil {
		return newNode(red, nil, it, nil), NewEntry
	}
	switch c := order(it.Key, n.item.Key); {
	case c < 0:
		left, outcome := insert(order, n.left, it)
		if outcome == NewEntry {
			return balance(n.color, left, n.item, n.right), outcome
		}
		return newNode(n.color, left, n.item, n.right), outcome
	case c > 0:
		right, outcome := insert(order, n.right, it)
		if outcome == NewEntry {
			return balance(n.color, n.left, n.item, right), outcome
		}
		return newNode(n.color, n.left, n.item, right), outcome
	default:
		// same entry under the ordering; keep the new key representation
		return newNode(n.color, n.left, it, n.right), Overwritten
	}
}

// balance resolves the four red-red violation shapes a bottom-up insertion
// can produce below a black node (x < y < z in every shape):
//
//	  Bz      Bz      Bx      Bx
//	  /       /        \       \
//	 Ry      Rx         Rz      Ry
//	 /        \        /         \
//	Rx         Ry     Ry          Rz
//
// Each of them is rewritten into the same balanced result, a red node with
// two black children:
//
//	   Ry
//	  /  \
//	 Bx    Bz
//
// When called with a doubleBlack node color (which only the deletion unwind
// does), the same four shapes resolve to a *black* root instead, absorbing
// the deficiency; if none of the shapes matches, the double-black node is
// rebuilt unchanged and keeps bubbling upward.
func balance[K, V any](c color, left *node[K, V], it Item[K, V], right *node[K, V]) *node[K, V] {
	if c == black || c == doubleBlack {
		res := red
		if c == doubleBlack {
			res = black
		}
		switch {
		case isRed(left) && isRed(left.left):
			l, ll := left, left.left
			return newNode(res,
				newNode(black, ll.left, ll.item, ll.right),
				l.item,
				newNode(black, l.right, it, right))
		case isRed(left) && isRed(left.right):
			l, lr := left, left.right
			return newNode(res,
				newNode(black, l.left, l.item, lr.left),
				lr.item,
				newNode(black, lr.right, it, right))
		case isRed(right) && isRed(right.left):
			r, rl := right, right.left
			return newNode(res,
				newNode(black, left, it, rl.left),
				rl.item,
				newNode(black, rl.right, r.item, r.right))
		case isRed(right) && isRed(right.right):
			r, rr := right, right.right
			return newNode(res,
				newNode(black, left, it, r.left),
				r.item,
				newNode(black, rr.left, rr.item, rr.right))
		}
	}
	return newNode(c, left, it, right)
}
