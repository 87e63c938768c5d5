// builder_test.go
// Copyright (C) 2023 Miðeind ehf.

// This file tests the Incremental Builder: insertion, deletion, and the
// minimality invariant after each mutation, in the plain testing style
// (manual slice/string comparisons, no testify) the teacher uses in
// skrafl_test.go.

package mdawg

import (
	"sort"
	"testing"
)

func sortedCopy(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

func equalStringSets(a, b []string) bool {
	a, b = sortedCopy(a), sortedCopy(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddAndContains(t *testing.T) {
	g := NewGraph()
	words := []string{"cat", "cats", "car", "cart", "dog"}
	for _, w := range words {
		changed, err := g.Add(w)
		if err != nil {
			t.Fatalf("Add(%q) returned error: %v", w, err)
		}
		if !changed {
			t.Errorf("Add(%q) reported no change on first insertion", w)
		}
	}
	for _, w := range words {
		if !g.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ca", "do", "carts", "catss"} {
		if g.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
	if g.Size() != len(words) {
		t.Errorf("Size() = %d, want %d", g.Size(), len(words))
	}
}

func TestAddDuplicateIsNoop(t *testing.T) {
	g := NewGraph()
	g.Add("hello")
	changed, err := g.Add("hello")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if changed {
		t.Errorf("Add(%q) a second time reported a change", "hello")
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
}

func TestRemove(t *testing.T) {
	g := NewGraph()
	for _, w := range []string{"cat", "cats", "car", "cart"} {
		g.Add(w)
	}
	changed, err := g.Remove("cats")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !changed {
		t.Errorf("Remove(%q) reported no change", "cats")
	}
	if g.Contains("cats") {
		t.Errorf("Contains(%q) = true after removal", "cats")
	}
	if !g.Contains("cat") {
		t.Errorf("Contains(%q) = false; removal of %q should not affect it", "cat", "cats")
	}
	if g.Size() != 3 {
		t.Errorf("Size() = %d, want 3", g.Size())
	}
}

func TestRemoveFullWord(t *testing.T) {
	g := NewGraph()
	g.Add("cat")
	changed, _ := g.Remove("cat")
	if !changed {
		t.Fatal("Remove(\"cat\") reported no change")
	}
	if g.Contains("cat") {
		t.Error("Contains(\"cat\") = true after removing the only word")
	}
	if g.Size() != 0 {
		t.Errorf("Size() = %d, want 0", g.Size())
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1 (bare source node)", g.NodeCount())
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	g := NewGraph()
	g.Add("cat")
	changed, err := g.Remove("dog")
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if changed {
		t.Error("Remove of an absent string reported a change")
	}
	if !g.Contains("cat") {
		t.Error("Remove of an absent string corrupted an existing one")
	}
}

func TestRemoveSingleCharWord(t *testing.T) {
	g := NewGraph()
	g.Add("x")
	changed, _ := g.Remove("x")
	if !changed {
		t.Fatal("Remove(\"x\") reported no change")
	}
	if g.Contains("x") {
		t.Error("Contains(\"x\") = true after removal")
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestMinimalityAfterMutations(t *testing.T) {
	g := NewGraph()
	words := []string{"bold", "bald", "gold", "cold", "cop", "cope", "cap", "cape"}
	for _, w := range words {
		g.Add(w)
	}
	// "bold"/"gold"/"cold" and "cap"/"cape","cop"/"cope" share suffixes;
	// a minimal graph merges their common tails into shared nodes, so the
	// number of equivalence classes must be strictly less than the
	// number of (node, transition) pairs a trie over the same words
	// would need.
	classes := g.EquivalenceClassCount()
	nodes := g.NodeCount()
	if classes != nodes {
		t.Errorf("EquivalenceClassCount() = %d, NodeCount() = %d; every live node must be registered", classes, nodes)
	}
	if nodes >= len("boldbaldgoldcoldcopcopecapcape") {
		t.Errorf("NodeCount() = %d did not benefit from suffix sharing", nodes)
	}
}

func TestAddIterablePropagatesError(t *testing.T) {
	g := NewGraph()
	boom := errBoom{}
	src := func(yield func(string) error) error {
		if err := yield("one"); err != nil {
			return err
		}
		if err := yield("two"); err != nil {
			return err
		}
		return boom
	}
	_, err := g.AddIterable(src)
	if err != boom {
		t.Fatalf("AddIterable error = %v, want %v", err, boom)
	}
	if !g.Contains("one") || !g.Contains("two") {
		t.Error("strings yielded before the failure should still be present")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestMutateAfterFreezeFails(t *testing.T) {
	g := NewGraph()
	g.Add("cat")
	g.Freeze()
	if _, err := g.Add("dog"); err != ErrFrozen {
		t.Errorf("Add after Freeze error = %v, want ErrFrozen", err)
	}
	if _, err := g.Remove("cat"); err != ErrFrozen {
		t.Errorf("Remove after Freeze error = %v, want ErrFrozen", err)
	}
}

func TestGetAllStrings(t *testing.T) {
	words := []string{"a", "ab", "abc", "b", "bc"}
	g := NewGraph()
	for _, w := range words {
		g.Add(w)
	}
	if !equalStringSets(g.GetAllStrings(), words) {
		t.Errorf("GetAllStrings() = %v, want %v", g.GetAllStrings(), words)
	}
}

func TestStringsStartingWith(t *testing.T) {
	words := []string{"cat", "cats", "car", "cart", "dog"}
	g := NewGraph()
	for _, w := range words {
		g.Add(w)
	}
	got := g.StringsStartingWith("ca")
	want := []string{"cat", "cats", "car", "cart"}
	if !equalStringSets(got, want) {
		t.Errorf("StringsStartingWith(%q) = %v, want %v", "ca", got, want)
	}
	if got := g.StringsStartingWith("xyz"); len(got) != 0 {
		t.Errorf("StringsStartingWith(%q) = %v, want empty", "xyz", got)
	}
}

func TestStringsEndingWithAndContaining(t *testing.T) {
	words := []string{"cat", "scatter", "attack", "bat"}
	g := NewGraph()
	for _, w := range words {
		g.Add(w)
	}
	gotEnd := g.StringsEndingWith("at")
	wantEnd := []string{"cat", "bat"}
	if !equalStringSets(gotEnd, wantEnd) {
		t.Errorf("StringsEndingWith(%q) = %v, want %v", "at", gotEnd, wantEnd)
	}
	gotContain := g.StringsContaining("att")
	wantContain := []string{"scatter", "attack"}
	if !equalStringSets(gotContain, wantContain) {
		t.Errorf("StringsContaining(%q) = %v, want %v", "att", gotContain, wantContain)
	}
}

func TestOutOfOrderInsertionMatchesSortedInsertion(t *testing.T) {
	words := []string{"zebra", "apple", "mango", "app", "man", "ant"}
	sortedWords := append([]string(nil), words...)
	sort.Strings(sortedWords)

	g1 := NewGraph()
	for _, w := range words {
		g1.Add(w)
	}
	g2 := NewGraph()
	for _, w := range sortedWords {
		g2.Add(w)
	}
	if g1.NodeCount() != g2.NodeCount() {
		t.Errorf("NodeCount differs by insertion order: %d vs %d", g1.NodeCount(), g2.NodeCount())
	}
	if !equalStringSets(g1.GetAllStrings(), g2.GetAllStrings()) {
		t.Error("accepted string sets differ by insertion order")
	}
}
