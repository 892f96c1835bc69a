package rbtree

import (
	"cmp"

	"github.com/npillmayer/ordered/maybe"
)

// Ordering is a three-way comparison over keys, returning a value < 0, 0 or
// > 0 for a < b, a == b and a > b respectively. It has to be a total
// preorder; a comparison that isn't is a precondition violation which the
// tree does not defend against at runtime.
//
// The ordering decides entry identity: keys comparing equal are the same
// entry, even when their representations differ (think of an ordering over a
// numeric type that compares 1 and 1.0 as equal). Inserting an
// equal-comparing key overwrites the entry, adopting the newly inserted key
// representation.
type Ordering[K any] func(a, b K) int

// Tree is a persistent ordered map from keys to values. Every update returns
// a new incarnation and leaves the receiver unchanged; incarnations share
// all unmodified subtrees.
//
// Create trees with New or NewOrdered; the zero value has no ordering and is
// not usable.
type Tree[K, V any] struct {
	root  *node[K, V]
	order Ordering[K]
	size  int
}

// New creates an empty tree over the given key ordering.
func New[K, V any](order Ordering[K]) Tree[K, V] {
	assertThat(order != nil, "tree needs an ordering; use NewOrdered for ordered key types")
	return Tree[K, V]{order: order}
}

// NewOrdered creates an empty tree over the standard Go ordering of K.
func NewOrdered[K cmp.Ordered, V any]() Tree[K, V] {
	return New[K, V](cmp.Compare[K])
}

func (t Tree[K, V]) ordering() Ordering[K] {
	assertThat(t.order != nil, "tree has no ordering; construct trees with New or NewOrdered")
	return t.order
}

// derive wraps a new root into a tree incarnation sharing t's ordering.
func (t Tree[K, V]) derive(root *node[K, V], size int) Tree[K, V] {
	return Tree[K, V]{root: root, order: t.order, size: size}
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of entries. O(1).
func (t Tree[K, V]) Len() int {
	return t.size
}

// IsEmpty is true for trees without entries.
func (t Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Fetch locates a key, if present, and returns the value associated with it.
// If key is not found, the zero value for type V will be returned, together
// with found=false.
func (t Tree[K, V]) Fetch(key K) (V, bool) {
	order := t.ordering()
	for n := t.root; n != nil; {
		switch c := order(key, n.item.Key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.item.Value, true
		}
	}
	var none V
	return none, false
}

// Min returns the entry with the smallest key, or Nothing for an empty tree.
// O(log n).
func (t Tree[K, V]) Min() maybe.Maybe[Item[K, V]] {
	if t.root == nil {
		return maybe.Nothing[Item[K, V]]()
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return maybe.Just(n.item)
}

// Max returns the entry with the greatest key, or Nothing for an empty tree.
// O(log n).
func (t Tree[K, V]) Max() maybe.Maybe[Item[K, V]] {
	if t.root == nil {
		return maybe.Nothing[Item[K, V]]()
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return maybe.Just(n.item)
}

// Items returns all entries in ascending key order. O(n).
func (t Tree[K, V]) Items() []Item[K, V] {
	return Fold(t, make([]Item[K, V], 0, t.size),
		func(entry Item[K, V], acc []Item[K, V]) []Item[K, V] {
			return append(acc, entry)
		})
}

// --- Convenience wrappers --------------------------------------------------

// With returns a copy of a tree with key inserted, associated with value.
// See Insert.
func (t Tree[K, V]) With(key K, value V) Tree[K, V] {
	newTree, _ := t.Insert(key, value)
	return newTree
}

// Without returns a copy of a tree with key deleted, if present. If key is
// not found, t is returned unchanged. See Delete.
func (t Tree[K, V]) Without(key K) Tree[K, V] {
	newTree, _ := t.Delete(key)
	return newTree
}

// InsertMany inserts a batch of entries, returning the new incarnation
// together with the number of newly created (not overwritten) entries.
func (t Tree[K, V]) InsertMany(items ...Item[K, V]) (Tree[K, V], int) {
	created := 0
	for _, entry := range items {
		var outcome Outcome
		t, outcome = t.Insert(entry.Key, entry.Value)
		if outcome == NewEntry {
			created++
		}
	}
	return t, created
}

// Pop removes a key, returning its value together with the new incarnation.
// If key is not found, t is returned unchanged with found=false.
func (t Tree[K, V]) Pop(key K) (V, Tree[K, V], bool) {
	value, found := t.Fetch(key)
	if !found {
		var none V
		return none, t, false
	}
	newTree, _ := t.Delete(key)
	return value, newTree, true
}
