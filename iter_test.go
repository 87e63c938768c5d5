// iter_test.go
// Copyright (C) 2023 Miðeind ehf.

package mdawg

import "testing"

func TestAllIterator(t *testing.T) {
	words := []string{"a", "ab", "b"}
	g := NewGraph()
	for _, w := range words {
		g.Add(w)
	}
	var got []string
	for s := range g.All() {
		got = append(got, s)
	}
	if !equalStringSets(got, words) {
		t.Errorf("All() yielded %v, want %v", got, words)
	}
}

func TestAllIteratorStopsEarly(t *testing.T) {
	g := NewGraph()
	for _, w := range []string{"aaa", "aab", "aac", "zzz"} {
		g.Add(w)
	}
	count := 0
	for range g.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("range broke after %d iterations, want 1", count)
	}
}

func TestWithPrefixIterator(t *testing.T) {
	g := NewGraph()
	for _, w := range []string{"cat", "cats", "car", "dog"} {
		g.Add(w)
	}
	var got []string
	for s := range g.WithPrefix("ca") {
		got = append(got, s)
	}
	want := []string{"cat", "cats", "car"}
	if !equalStringSets(got, want) {
		t.Errorf("WithPrefix(%q) yielded %v, want %v", "ca", got, want)
	}
}

func TestFrozenAllIterator(t *testing.T) {
	g := NewGraph()
	for _, w := range []string{"x", "xy"} {
		g.Add(w)
	}
	f := g.Freeze()
	var got []string
	for s := range f.All() {
		got = append(got, s)
	}
	if !equalStringSets(got, []string{"x", "xy"}) {
		t.Errorf("frozen All() yielded %v", got)
	}
}
