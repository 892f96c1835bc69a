/*
Package rbtree implements a persistent (immutable) ordered-collection engine,
backed by a red-black balanced binary search tree.

Trees have copy-on-write behaviour: each “modification” (insertion, deletion,
replacement) returns a new incarnation of the tree, leaving the original
unmodified. Under the hood an update copies only the nodes along the search
path — O(log n) of them — and shares every other subtree with the original.
Prior incarnations stay fully valid; holding on to one is free.

Immutable trees are inherently safe for concurrent reads, without any locking:
no operation ever mutates a node in place.

The engine is generic over both the key and the payload. Map-like collections
instantiate Tree[K, V]; set-like collections use the element itself as key and
an empty payload (see Set). The ordering of keys is a three-way comparison
supplied once, at construction time. Keys that compare equal under this
ordering denote the same entry: inserting such a key overwrites the entry and
adopts the newly inserted key representation.

Deletion follows the double-black rebalancing scheme for functional red-black
trees: removing a black leaf leaves a transient “one black short” marker that
is rotated away or bubbled upward during the unwind of the recursion. The
transient colors never escape the deletion internals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.rbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
