package rbtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestDeleteFromEmptyTree(t *testing.T) {
	tree := NewOrdered[int, string]()
	tree, found := tree.Delete(7)
	if found {
		t.Error("expected deleting from empty tree to report found=false, doesn't")
	}
	if !tree.IsEmpty() {
		t.Error("expected tree to stay empty")
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	tree := NewOrdered[int, string]().With(1, "1").With(2, "2").With(3, "3")
	unchanged, found := tree.Delete(7)
	if found {
		t.Error("expected deleting absent 7 to report found=false, doesn't")
	}
	if unchanged.root != tree.root {
		t.Error("expected deleting an absent key to return the tree unchanged, doesn't")
	}
}

func TestDeleteAbsentKeyAllocatesNothing(t *testing.T) {
	tree := NewOrdered[int, int]()
	for k := 0; k < 64; k += 2 {
		tree = tree.With(k, k)
	}
	allocs := testing.AllocsPerRun(100, func() {
		tree.Delete(33)
	})
	if allocs != 0 {
		t.Errorf("expected deleting an absent key to allocate nothing, allocates %.1f", allocs)
	}
}

func TestDeleteRootScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	tree := NewOrdered[int, string]().With(2, "2").With(1, "1").With(3, "3")
	tree, found := tree.Delete(2)
	if !found {
		t.Fatal("expected to delete 2, didn't")
	}
	t.Logf("tree = %s", tree)
	keys := treeKeys(tree)
	if len(keys) != 2 || keys[0] != 1 || keys[1] != 3 {
		t.Errorf("expected remaining entries [1 3], have %v", keys)
	}
	requireInvariant(t, tree)
}

func TestDeleteSingleEntry(t *testing.T) {
	tree := NewOrdered[int, string]().With(7, "7")
	tree, found := tree.Delete(7)
	if !found || !tree.IsEmpty() {
		t.Errorf("expected empty tree after deleting the only entry, have %s", tree)
	}
	requireInvariant(t, tree)
}

func TestDeleteThenFetch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := NewOrdered[int, int]()
	for k := 0; k < 20; k++ {
		tree = tree.With(k, k)
	}
	tree, found := tree.Delete(11)
	require.True(t, found)
	_, found = tree.Fetch(11)
	require.False(t, found, "deleted key must not be fetchable")
	require.Equal(t, 19, tree.Len())
}

func TestDeleteRestoresOriginalEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := NewOrdered[int, int]()
	for _, k := range []int{5, 2, 9, 1, 7} {
		tree = tree.With(k, k)
	}
	items := tree.Items()
	modified := tree.With(4, 4)
	modified, found := modified.Delete(4)
	require.True(t, found)
	require.Equal(t, items, modified.Items(),
		"insert of an absent key followed by its deletion must restore the entries")
}

func TestDeleteAllAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 64
	tree := NewOrdered[int, int]()
	for k := 0; k < n; k++ {
		tree = tree.With(k, k)
	}
	for k := 0; k < n; k++ {
		var found bool
		tree, found = tree.Delete(k)
		if !found {
			t.Fatalf("expected to delete %d, didn't", k)
		}
		requireInvariant(t, tree)
	}
	if !tree.IsEmpty() {
		t.Errorf("expected empty tree after deleting all entries, has %d", tree.Len())
	}
}

func TestDeleteAllDescending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 64
	tree := NewOrdered[int, int]()
	for k := 0; k < n; k++ {
		tree = tree.With(k, k)
	}
	for k := n - 1; k >= 0; k-- {
		var found bool
		tree, found = tree.Delete(k)
		if !found {
			t.Fatalf("expected to delete %d, didn't", k)
		}
		requireInvariant(t, tree)
	}
	require.True(t, tree.IsEmpty())
}

func TestDeleteAllRandomOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 256
	rng := rand.New(rand.NewSource(42))
	keys := rng.Perm(n)
	tree := NewOrdered[int, int]()
	for _, k := range keys {
		tree = tree.With(k, k)
	}
	order := rng.Perm(n)
	remaining := map[int]bool{}
	for _, k := range keys {
		remaining[k] = true
	}
	for _, k := range order {
		var found bool
		tree, found = tree.Delete(k)
		require.True(t, found, "key %d must be deletable", k)
		delete(remaining, k)
		requireInvariant(t, tree)
		require.Equal(t, len(remaining), tree.Len())
	}
	require.True(t, tree.IsEmpty())
}

func TestDeleteKeepsPriorIncarnationsValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 32
	incarnations := make([]Tree[int, int], 0, n+1)
	tree := NewOrdered[int, int]()
	for k := 0; k < n; k++ {
		tree = tree.With(k, k)
	}
	incarnations = append(incarnations, tree)
	for k := 0; k < n; k++ {
		tree, _ = tree.Delete(k)
		incarnations = append(incarnations, tree)
	}
	// every incarnation still holds exactly the entries it held back then
	for i, incarnation := range incarnations {
		require.Equal(t, n-i, incarnation.Len())
		keys := make([]int, 0, n)
		for _, entry := range incarnation.Items() {
			keys = append(keys, entry.Key)
		}
		require.True(t, sort.IntsAreSorted(keys))
		if len(keys) > 0 && keys[0] != i {
			t.Errorf("incarnation %d: expected smallest key %d, have %d", i, i, keys[0])
		}
		requireInvariant(t, incarnation)
	}
}
