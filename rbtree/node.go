package rbtree

// color of a node. Only red and black ever appear in a tree returned from a
// public operation. The two darker values are transient states of the
// deletion engine (see delete.go): doubleBlack marks a node on a path that is
// one black unit short, doubleBlackEmpty marks an empty position with the
// same deficiency. They exist only in intermediate results of the private
// deletion helpers and are stripped before a tree reaches the public
// boundary.
type color int8

const (
	red color = iota
	black
	doubleBlack
	doubleBlackEmpty
)

func (c color) String() string {
	switch c {
	case red:
		return "R"
	case black:
		return "B"
	case doubleBlack:
		return "BB"
	case doubleBlackEmpty:
		return "BB∅"
	}
	return "?"
}

// Item is a key/value entry of a tree. For set-like collections the value is
// an empty payload and the key is the element itself.
type Item[K, V any] struct {
	Key   K
	Value V
}

// node is an immutable tree node. The empty tree / empty subtree is a nil
// *node. Nodes are never modified after construction; every update path goes
// through newNode, copying the O(log n) nodes on the search path and sharing
// all others.
type node[K, V any] struct {
	color color
	left  *node[K, V]
	right *node[K, V]
	item  Item[K, V]
}

func newNode[K, V any](c color, left *node[K, V], it Item[K, V], right *node[K, V]) *node[K, V] {
	return &node[K, V]{color: c, left: left, right: right, item: it}
}

// isEmpty is true for the empty sentinel in either of its colors, ordinary
// (nil) or transient double-black.
func (n *node[K, V]) isEmpty() bool {
	return n == nil || n.color == doubleBlackEmpty
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// isBlack counts the empty sentinel as black.
func isBlack[K, V any](n *node[K, V]) bool {
	return n == nil || n.color == black
}

// isBlackNode is true for non-empty, plain black nodes only.
func isBlackNode[K, V any](n *node[K, V]) bool {
	return n != nil && n.color == black
}

func isDoubleBlack[K, V any](n *node[K, V]) bool {
	return n != nil && (n.color == doubleBlack || n.color == doubleBlackEmpty)
}

// blacken forces a (possibly transiently colored) subtree root to ordinary
// black. A red root is recolored, a double-black root loses its extra unit,
// a double-black empty becomes the ordinary empty sentinel.
func blacken[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil || n.color == doubleBlackEmpty {
		return nil
	}
	if n.color == black {
		return n
	}
	return newNode(black, n.left, n.item, n.right)
}

// redden recolors a black node with two black children red. Deletion applies
// this to the root before descending; the rotate cases of the unwind rely on
// this precondition.
func redden[K, V any](n *node[K, V]) *node[K, V] {
	if isBlackNode(n) && isBlack(n.left) && isBlack(n.right) {
		return newNode(red, n.left, n.item, n.right)
	}
	return n
}

// reddenColor is redden by color only, for a caller that must not allocate
// before knowing whether a deletion will happen at all.
func reddenColor[K, V any](n *node[K, V]) color {
	if isBlackNode(n) && isBlack(n.left) && isBlack(n.right) {
		return red
	}
	return n.color
}

// undouble removes one unit of blackness from a double-black subtree.
func undouble[K, V any](n *node[K, V]) *node[K, V] {
	assertThat(isDoubleBlack(n), "undouble applied to a node that is not double-black")
	if n.color == doubleBlackEmpty {
		return nil
	}
	return newNode(black, n.left, n.item, n.right)
}
