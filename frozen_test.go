// frozen_test.go
// Copyright (C) 2023 Miðeind ehf.

// This file tests the Freeze Pass and frozen-form lookup: that freezing
// preserves the accepted-string set exactly, and that frozen queries agree
// with their mutable-graph counterparts.

package mdawg

import "testing"

func buildFrozen(t *testing.T, words []string) *FrozenGraph {
	t.Helper()
	g, err := NewGraphFromIterable(SliceIterable(words))
	if err != nil {
		t.Fatalf("NewGraphFromIterable returned error: %v", err)
	}
	return g.Freeze()
}

func TestFreezePreservesMembership(t *testing.T) {
	words := []string{"cat", "cats", "car", "cart", "dog", "do"}
	f := buildFrozen(t, words)
	for _, w := range words {
		if !f.Contains(w) {
			t.Errorf("frozen Contains(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ca", "c", "doge", "cartoon"} {
		if f.Contains(w) {
			t.Errorf("frozen Contains(%q) = true, want false", w)
		}
	}
	if f.Size() != len(words) {
		t.Errorf("frozen Size() = %d, want %d", f.Size(), len(words))
	}
}

func TestFreezeThenQueryThroughGraph(t *testing.T) {
	g := NewGraph()
	for _, w := range []string{"alpha", "alter", "alt", "beta"} {
		g.Add(w)
	}
	g.Freeze()
	if !g.Contains("alpha") || g.Contains("alp") {
		t.Error("Graph.Contains after Freeze disagrees with frozen form")
	}
	got := g.StringsStartingWith("al")
	want := []string{"alpha", "alter", "alt"}
	if !equalStringSets(got, want) {
		t.Errorf("StringsStartingWith after Freeze = %v, want %v", got, want)
	}
}

func TestFreezeIsIdempotent(t *testing.T) {
	g := NewGraph()
	g.Add("x")
	f1 := g.Freeze()
	f2 := g.Freeze()
	if f1 != f2 {
		t.Error("Freeze called twice returned different FrozenGraph instances")
	}
}

func TestFrozenEnumeration(t *testing.T) {
	words := []string{"a", "ab", "abc", "b"}
	f := buildFrozen(t, words)
	if !equalStringSets(f.GetAllStrings(), words) {
		t.Errorf("frozen GetAllStrings() = %v, want %v", f.GetAllStrings(), words)
	}
}

func TestFrozenNodeCountEqualsMutable(t *testing.T) {
	words := []string{"bold", "gold", "cold", "cop", "cope", "cap", "cape"}
	g, _ := NewGraphFromIterable(SliceIterable(words))
	mutableNodes := g.NodeCount()
	f := g.Freeze()
	if f.nodeCount() != mutableNodes {
		t.Errorf("frozen nodeCount() = %d, mutable NodeCount() = %d; freeze must not change the node set", f.nodeCount(), mutableNodes)
	}
}
