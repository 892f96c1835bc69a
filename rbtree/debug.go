package rbtree

import (
	"fmt"
	"io"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Debugging helpers. None of these are part of the operation surface proper;
// they exist to make test failures and trace output readable.

func (n *node[K, V]) String() string {
	if n == nil {
		return "∅"
	}
	if n.color == doubleBlackEmpty {
		return "∅" + doubleBlackEmpty.String()
	}
	return fmt.Sprintf("⟨%s %v⟩", n.color, n.item.Key)
}

// String renders a tree as a nested parenthesized expression, in-order, e.g.
// "(⟨R 1⟩ ⟨B 2⟩ ⟨R 3⟩)" for the tree holding 1…3. Intended for small trees
// in trace messages; use Dump for anything bigger.
func (t Tree[K, V]) String() string {
	var sb strings.Builder
	writeNode(&sb, t.root)
	return sb.String()
}

func writeNode[K, V any](sb *strings.Builder, n *node[K, V]) {
	if n == nil {
		sb.WriteString("∅")
		return
	}
	if n.left == nil && n.right == nil {
		sb.WriteString(n.String())
		return
	}
	sb.WriteByte('(')
	writeNode(sb, n.left)
	sb.WriteByte(' ')
	sb.WriteString(n.String())
	sb.WriteByte(' ')
	writeNode(sb, n.right)
	sb.WriteByte(')')
}

// Dump renders the structure of a tree as an indented tree drawing (one
// branch per line), for debugging purposes.
func (t Tree[K, V]) Dump() string {
	header := fmt.Sprintf("Tree(size=%d)\n", t.size)
	p := tp.New()
	dumpNode(p, t.root)
	return header + p.String()
}

func dumpNode[K, V any](p tp.Tree, n *node[K, V]) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	dumpNode(branch, n.left)
	dumpNode(branch, n.right)
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Red and black nodes are styled accordingly;
// empty sentinels are drawn as points.
func (t Tree[K, V]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	ids := map[*node[K, V]]int{}
	nextEmpty := -1
	var emit func(n *node[K, V]) int
	emit = func(n *node[K, V]) int {
		if n == nil {
			id := nextEmpty
			nextEmpty--
			fmt.Fprintf(w, "\t\"%d\" [shape=point,fillcolor=black];\n", id)
			return id
		}
		id := len(ids) + 1
		ids[n] = id
		fill := "black"
		if n.color == red {
			fill = "red"
		}
		fmt.Fprintf(w, "\t\"%d\" [label=\"%v\",fillcolor=%s];\n", id, n.item.Key, fill)
		left := emit(n.left)
		right := emit(n.right)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, left)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, right)
		return id
	}
	if t.root != nil {
		emit(t.root)
	}
	io.WriteString(w, "}\n")
}
