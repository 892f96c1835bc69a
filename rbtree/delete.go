package rbtree

/*
Functional deletion from a red-black tree is the hard part of this package.
Removing a black leaf shortens its path by one black node, violating the
equal-black-height invariant, and with immutable nodes the usual pointer
surgery is unavailable. The scheme implemented here is the double-black one:

 1. redden the root (when it is black with two black children), establishing
    the precondition the rotate cases below rely on;
 2. descend to the entry; removing it either succeeds locally (red leaf) or
    leaves a transient double-black marker, one black unit short;
 3. on the unwind, every level passes through rotate, which either absorbs
    the deficiency by rotating a black node over from the sibling side, or
    darkens the current node and lets the deficiency bubble one level up;
 4. finally the root is forced back to plain black, which is sound precisely
    because of step 1.

The transient colors (doubleBlack, doubleBlackEmpty) are private to this
file's helpers and never appear in a tree returned from the public API.

An alternative scheme adds a third transient color ("negative black") for one
more local rotation opportunity; it is deliberately not implemented here, and
must not be mixed into the cases below.
*/

// Delete returns a copy of a tree with key deleted. If key is not found,
// the tree is returned unchanged (found=false) and nothing is allocated:
// a single descent locates the entry, and a miss tunnels back up without
// copying a node.
//
// O(log n) comparisons and O(log n) new nodes.
func (t Tree[K, V]) Delete(key K) (Tree[K, V], bool) {
	order := t.ordering()
	if t.root == nil {
		return t, false
	}
	root, found := delAt(order, t.root, reddenColor(t.root), key)
	if !found {
		return t, false
	}
	tracer().Debugf("delete: key=%v", key)
	return t.derive(blacken(root), t.size-1), true
}

// PopMin removes the entry with the smallest key, returning it together with
// the new incarnation. If the tree is empty, t is returned unchanged with
// found=false.
func (t Tree[K, V]) PopMin() (Item[K, V], Tree[K, V], bool) {
	if t.root == nil {
		var none Item[K, V]
		return none, t, false
	}
	rest, removed := delMin(redden(t.root))
	return removed, t.derive(blacken(rest), t.size-1), true
}

// PopMax is the mirror image of PopMin.
func (t Tree[K, V]) PopMax() (Item[K, V], Tree[K, V], bool) {
	if t.root == nil {
		var none Item[K, V]
		return none, t, false
	}
	rest, removed := delMax(redden(t.root))
	return removed, t.derive(blacken(rest), t.size-1), true
}

// del descends into a subtree looking for key. found=false tunnels an absent
// key back up; no nodes are allocated or copied on that path. The returned
// subtree may carry a transient double-black root.
func del[K, V any](order Ordering[K], n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	return delAt(order, n, n.color, key)
}

// delAt is del with an explicit effective color for n: the deletion entry
// point reddens the root by color only, so that a miss costs no allocation.
func delAt[K, V any](order Ordering[K], n *node[K, V], c color, key K) (*node[K, V], bool) {
	switch rel := order(key, n.item.Key); {
	case rel < 0:
		left, found := del(order, n.left, key)
		if !found {
			return n, false
		}
		return rotate(c, left, n.item, n.right), true
	case rel > 0:
		right, found := del(order, n.right, key)
		if !found {
			return n, false
		}
		return rotate(c, n.left, n.item, right), true
	default:
		return removeAt(n, c), true
	}
}

// removeAt detaches the entry at n, whose effective color is c. Leaf-adjacent
// shapes resolve directly; an inner node is reduced to one of them by
// substituting the minimum entry of its right subtree and deleting that
// minimum instead.
func removeAt[K, V any](n *node[K, V], c color) *node[K, V] {
	switch {
	case n.left == nil && n.right == nil:
		if c == red {
			return nil
		}
		// a black leaf goes: this path is now one black unit short
		return &node[K, V]{color: doubleBlackEmpty}
	case n.right == nil:
		// the only child of a black node is a red leaf
		assertThat(c == black && isRed(n.left), "unbalanced node shape in deletion")
		return newNode(black, nil, n.left.item, nil)
	case n.left == nil:
		assertThat(c == black && isRed(n.right), "unbalanced node shape in deletion")
		return newNode(black, nil, n.right.item, nil)
	default:
		right, successor := delMin(n.right)
		return rotate(c, n.left, successor, right)
	}
}

// delMin removes the minimum entry of a non-empty subtree, returning the
// remainder (possibly double-black) together with the removed entry.
func delMin[K, V any](n *node[K, V]) (*node[K, V], Item[K, V]) {
	if n.left == nil {
		return removeAt(n, n.color), n.item
	}
	left, removed := delMin(n.left)
	return rotate(n.color, left, n.item, n.right), removed
}

func delMax[K, V any](n *node[K, V]) (*node[K, V], Item[K, V]) {
	if n.right == nil {
		return removeAt(n, n.color), n.item
	}
	right, removed := delMax(n.right)
	return rotate(n.color, n.left, n.item, right), removed
}

// rotate is the per-level rebalancing step of the deletion unwind. Its cases
// are a closed set of local shapes, indexed by the node color, which child
// carries the double-black deficiency, and the sibling's color and shape.
// Either a black node is rotated over from the sibling side, absorbing the
// deficiency via balance, or no local rotation suffices and the node itself
// turns darker, bubbling the deficiency one level up.
//
// Shapes are written as (color left item right), with BB standing for either
// a double-black node or the double-black empty.
func rotate[K, V any](c color, l *node[K, V], it Item[K, V], r *node[K, V]) *node[K, V] {
	switch {
	case c == red && isDoubleBlack(l) && isBlackNode(r):
		// (R BB x (B c y d))  ->  balance (B (R x' x c) y d), x' one lighter
		return balance(black, newNode(red, undouble(l), it, r.left), r.item, r.right)

	case c == red && isDoubleBlack(r) && isBlackNode(l):
		// mirror image
		return balance(black, l.left, l.item, newNode(red, l.right, it, undouble(r)))

	case c == black && isDoubleBlack(l) && isBlackNode(r):
		// (B BB x (B c y d))  ->  balance (BB (R x' x c) y d)
		return balance(doubleBlack, newNode(red, undouble(l), it, r.left), r.item, r.right)

	case c == black && isDoubleBlack(r) && isBlackNode(l):
		// mirror image
		return balance(doubleBlack, l.left, l.item, newNode(red, l.right, it, undouble(r)))

	case c == black && isDoubleBlack(l) && isRed(r):
		// red sibling: rotate it up; its left child is a black node which
		// becomes the new sibling, and the deficiency resolves one level
		// deeper
		assertThat(isBlackNode(r.left), "red sibling of a double-black must have black children")
		return newNode(black,
			balance(black, newNode(red, undouble(l), it, r.left.left), r.left.item, r.left.right),
			r.item, r.right)

	case c == black && isDoubleBlack(r) && isRed(l):
		// mirror image
		assertThat(isBlackNode(l.right), "red sibling of a double-black must have black children")
		return newNode(black, l.left, l.item,
			balance(black, l.right.left, l.right.item, newNode(red, l.right.right, it, undouble(r))))

	default:
		assertThat(!isDoubleBlack(l) && !isDoubleBlack(r),
			"double-black with no matching rotation; tree was unbalanced before deletion")
		return newNode(c, l, it, r)
	}
}
