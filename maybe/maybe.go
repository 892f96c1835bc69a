/*
Package maybe provides optional values.

A Maybe[T] either holds a value of type T (Just) or holds nothing (Nothing).
It is the result type of choice for partial queries, e.g. asking an ordered
collection for its smallest entry: an empty collection has none, and a zero
value of T would be indistinguishable from a stored zero.

Clients either provide a fallback,

	smallest := tree.Min().WithDefault(none)

or discriminate the two cases with a match:

	var entry Item
	switch m := tree.Min().Match(); m {
	case m.Just(&entry):
		// use entry
	case m.Nothing():
		// tree is empty
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPair converts Go's customary (value, ok) pair into a Maybe.
func FromPair[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Get unpacks a Maybe into Go's customary (value, ok) pair.
func Get[T any](m Maybe[T]) (T, bool) {
	x := m.(maybe[T])
	return x.value, x.tag
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: &m}
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a function producing a Maybe of a different type.
// It is a package-level function because Go methods cannot introduce
// additional type parameters.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the wrapped value; Nothing stays Nothing.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

// Matcher discriminates the two cases of a Maybe, for use in a switch.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher holds its maybe by pointer: a match compares Matcher interface
// values, and the indirection keeps that comparison legal for wrapped types
// that are not themselves comparable (slices, maps, functions).
type matcher[T any] struct {
	m *maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
