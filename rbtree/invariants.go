package rbtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ordered/result"
)

// ErrInvariant signals a violated red-black tree invariant.
var ErrInvariant = errors.New("rbtree: invariant violated")

// CheckInvariant verifies the red-black properties of a tree:
//
//   - the binary-search property relative to the tree's ordering,
//   - the root is never red,
//   - no red node has a red child,
//   - every root-to-empty path passes through the same number of black
//     nodes,
//   - no transient deletion color is present.
//
// It returns Ok with the tree's black-height (black nodes on any path from
// the root down to an empty, the empty sentinel not counted), or Err with a
// description of the violation, wrapping ErrInvariant.
//
// This checker is intentionally strict and meant for the test suite; it
// walks the whole tree and has no business on a production code path.
func (t Tree[K, V]) CheckInvariant() result.Result[int] {
	if isRed(t.root) {
		return result.Err[int](fmt.Errorf("%w: root is red", ErrInvariant))
	}
	height, err := blackHeight(t.root)
	if err != nil {
		return result.Err[int](err)
	}
	if err := t.checkAscending(); err != nil {
		return result.Err[int](err)
	}
	return result.Ok(height)
}

func blackHeight[K, V any](n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	switch n.color {
	case red, black:
	default:
		return 0, fmt.Errorf("%w: transient color %s on a public tree", ErrInvariant, n.color)
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: red node ⟨%v⟩ has a red child", ErrInvariant, n.item.Key)
	}
	lh, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black-height mismatch below ⟨%v⟩ (%d != %d)",
			ErrInvariant, n.item.Key, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}

// checkAscending verifies the binary-search property by walking the entries
// in order and requiring strict ascent under the tree's ordering. It doubles
// as a consistency check of the maintained entry count.
func (t Tree[K, V]) checkAscending() error {
	order := t.ordering()
	it := t.Iterator()
	entry, ok := it.Next()
	if !ok {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrInvariant, t.size)
		}
		return nil
	}
	count := 1
	prev := entry.Key
	for {
		entry, ok = it.Next()
		if !ok {
			break
		}
		if order(prev, entry.Key) >= 0 {
			return fmt.Errorf("%w: entries not in strictly ascending order at ⟨%v⟩",
				ErrInvariant, entry.Key)
		}
		prev = entry.Key
		count++
	}
	if count != t.size {
		return fmt.Errorf("%w: tree holds %d entries but reports size %d",
			ErrInvariant, count, t.size)
	}
	return nil
}
