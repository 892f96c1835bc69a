/*
Package result provides fallible values.

A Result[T] is the outcome of a computation that may fail: either a value of
type T (Ok) or an error (Err). It is used where a diagnostic carries a payload
in the success case, e.g. an invariant checker reporting the verified
black-height of a tree.

Clients unpack a result into Go's customary pair,

	height, err := result.Get(tree.CheckInvariant())

or discriminate the two cases with a match:

	var height int
	var err error
	switch m := tree.CheckInvariant().Match(); m {
	case m.Ok(&height):
		// invariants hold
	case m.Err(&err):
		// err describes the violation
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Get unpacks a result into Go's customary (value, error) pair.
func Get[T any](r Result[T]) (T, error) {
	x := r.(result[T])
	return x.value, x.err
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

// --- Matching --------------------------------------------------------------

// Matcher discriminates the two cases of a Result, for use in a switch.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher holds its result by pointer: a match compares Matcher interface
// values, and the indirection keeps that comparison legal for wrapped types
// that are not themselves comparable.
type matcher[T any] struct {
	r *result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
