package rbtree

import (
	"cmp"

	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/result"
)

// Set is the element-only variant of the engine: the same red-black tree,
// with the element as its own key and an empty payload. All the persistence
// and sharing properties of Tree carry over unchanged.
type Set[E any] struct {
	tree Tree[E, struct{}]
}

// NewSet creates an empty set over the given element ordering.
func NewSet[E any](order Ordering[E]) Set[E] {
	return Set[E]{tree: New[E, struct{}](order)}
}

// NewOrderedSet creates an empty set over the standard Go ordering of E.
func NewOrderedSet[E cmp.Ordered]() Set[E] {
	return NewSet(cmp.Compare[E])
}

// Tree exposes the underlying tree, for folds and reductions over set
// elements.
func (s Set[E]) Tree() Tree[E, struct{}] {
	return s.tree
}

// Len returns the number of elements. O(1).
func (s Set[E]) Len() int {
	return s.tree.Len()
}

// IsEmpty is true for sets without elements.
func (s Set[E]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Contains tests element membership, up to the set's ordering.
func (s Set[E]) Contains(el E) bool {
	_, found := s.tree.Fetch(el)
	return found
}

// Insert returns a copy of a set with el inserted. An element comparing
// equal to el is overwritten, adopting the newly inserted representation;
// the Outcome tells the two cases apart.
func (s Set[E]) Insert(el E) (Set[E], Outcome) {
	tree, outcome := s.tree.Insert(el, struct{}{})
	return Set[E]{tree: tree}, outcome
}

// With returns a copy of a set with el inserted. See Insert.
func (s Set[E]) With(el E) Set[E] {
	newSet, _ := s.Insert(el)
	return newSet
}

// Delete returns a copy of a set with el removed; found=false if el was not
// an element, with s returned unchanged.
func (s Set[E]) Delete(el E) (Set[E], bool) {
	tree, found := s.tree.Delete(el)
	return Set[E]{tree: tree}, found
}

// Without returns a copy of a set with el removed, if present. See Delete.
func (s Set[E]) Without(el E) Set[E] {
	newSet, _ := s.Delete(el)
	return newSet
}

// Min returns the smallest element, or Nothing for an empty set.
func (s Set[E]) Min() maybe.Maybe[E] {
	if entry, ok := maybe.Get(s.tree.Min()); ok {
		return maybe.Just(entry.Key)
	}
	return maybe.Nothing[E]()
}

// Max returns the greatest element, or Nothing for an empty set.
func (s Set[E]) Max() maybe.Maybe[E] {
	if entry, ok := maybe.Get(s.tree.Max()); ok {
		return maybe.Just(entry.Key)
	}
	return maybe.Nothing[E]()
}

// PopMin removes the smallest element, returning it together with the new
// incarnation. found=false for an empty set.
func (s Set[E]) PopMin() (E, Set[E], bool) {
	entry, tree, found := s.tree.PopMin()
	return entry.Key, Set[E]{tree: tree}, found
}

// PopMax is the mirror image of PopMin.
func (s Set[E]) PopMax() (E, Set[E], bool) {
	entry, tree, found := s.tree.PopMax()
	return entry.Key, Set[E]{tree: tree}, found
}

// Elements returns all elements in ascending order. O(n).
func (s Set[E]) Elements() []E {
	return Fold(s.tree, make([]E, 0, s.tree.Len()),
		func(entry Item[E, struct{}], acc []E) []E {
			return append(acc, entry.Key)
		})
}

// CheckInvariant verifies the red-black properties of the underlying tree;
// see Tree.CheckInvariant.
func (s Set[E]) CheckInvariant() result.Result[int] {
	return s.tree.CheckInvariant()
}
