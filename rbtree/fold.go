package rbtree

// Fold folds fn over t's entries in ascending key order: the left subtree
// first, then the node, then the right subtree. O(n).
//
// Fold is a package-level function because Go methods cannot introduce the
// accumulator's type parameter.
func Fold[K, V, A any](t Tree[K, V], acc A, fn func(Item[K, V], A) A) A {
	return foldNode(t.root, acc, fn)
}

// FoldR folds fn over t's entries in descending key order. Unlike reversing
// a folded list, FoldR costs the same O(n) as Fold; callers building reversed
// output should use it directly.
func FoldR[K, V, A any](t Tree[K, V], acc A, fn func(Item[K, V], A) A) A {
	return foldNodeR(t.root, acc, fn)
}

func foldNode[K, V, A any](n *node[K, V], acc A, fn func(Item[K, V], A) A) A {
	if n == nil {
		return acc
	}
	acc = foldNode(n.left, acc, fn)
	acc = fn(n.item, acc)
	return foldNode(n.right, acc, fn)
}

func foldNodeR[K, V, A any](n *node[K, V], acc A, fn func(Item[K, V], A) A) A {
	if n == nil {
		return acc
	}
	acc = foldNodeR(n.right, acc, fn)
	acc = fn(n.item, acc)
	return foldNodeR(n.left, acc, fn)
}
