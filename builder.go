// builder.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements the Incremental Builder: Graph, the public mutable
// facade, and the insertion/deletion/confluence-cloning/replaceOrRegister
// machinery that keeps the mutable graph minimal. It follows the "add and
// confluence-clone" variant of Daciuk-Mihov incremental minimization
// described in spec section 4.3, extended to non-sorted input and deletion.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package mdawg

import "github.com/golang/glog"

// StringIterable is a producer of strings that may fail partway through.
// It calls yield once per string, in whatever order it likes, and stops as
// soon as yield returns a non-nil error, propagating that error (the
// "IteratorFault" of spec section 7) back out unchanged.
type StringIterable func(yield func(string) error) error

// SliceIterable adapts a plain slice into a StringIterable.
func SliceIterable(strs []string) StringIterable {
	return func(yield func(string) error) error {
		for _, s := range strs {
			if err := yield(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// Graph is the mutable, incrementally-built word graph. Before Freeze, it
// owns an arena and an equivalence register and supports Add/Remove; after
// Freeze those are dropped and queries are served from the frozen
// representation instead, per spec section 4.4's lifecycle.
//
// Graph is not safe for concurrent mutation, nor for concurrent mutation
// and query: spec section 5 scopes it single-writer. Once frozen, the
// Graph (and the FrozenGraph it wraps) is safe for unrestricted concurrent
// readers.
type Graph struct {
	arena    *arena
	alphabet alphabetSet
	register *register
	source   *node
	size     int

	// prev is the symbol sequence of the most recently inserted string
	// whose tail has not yet been minimized (Phase A/C of spec 4.3.1).
	// settled is true once that minimization has run.
	prev    []Symbol
	settled bool

	frozen *FrozenGraph
	cache  *queryCache
}

// NewGraph constructs an empty graph: a single, non-accepting source node.
func NewGraph() *Graph {
	a := newArena()
	return &Graph{
		arena:    a,
		alphabet: newAlphabetSet(),
		register: newRegister(),
		source:   a.newNode(false),
		settled:  true,
	}
}

// NewGraphFromIterable constructs a graph containing every string src
// produces. If src returns an error partway through, it is returned
// unchanged alongside the graph built from the strings seen before the
// failure (spec section 6's "iteration errors propagated").
func NewGraphFromIterable(src StringIterable) (*Graph, error) {
	g := NewGraph()
	_, err := g.AddIterable(src)
	return g, err
}

// Add inserts s, returning true iff the accepted-string set changed. It
// fails with ErrFrozen if called after Freeze.
func (g *Graph) Add(s string) (bool, error) {
	if g.frozen != nil {
		return false, ErrFrozen
	}
	syms := toSymbols(s)
	g.settleTail(syms)
	changed := g.insertPath(syms)
	if changed {
		g.size++
	}
	g.prev = syms
	g.settled = false
	return changed, nil
}

// AddIterable inserts every string src produces, returning true iff any of
// them changed the accepted-string set. A producer-side error from src is
// returned unchanged; strings already inserted before the failure remain
// in the graph.
func (g *Graph) AddIterable(src StringIterable) (bool, error) {
	if g.frozen != nil {
		return false, ErrFrozen
	}
	changed := false
	err := src(func(s string) error {
		c, addErr := g.Add(s)
		if addErr != nil {
			return addErr
		}
		if c {
			changed = true
		}
		return nil
	})
	return changed, err
}

// Remove deletes s, returning true iff the accepted-string set changed.
// Removing a string that is not present is a no-op returning false (spec's
// Open Question on remove-of-absent resolved in favor of a membership
// check, per DESIGN NOTES).
func (g *Graph) Remove(s string) (bool, error) {
	if g.frozen != nil {
		return false, ErrFrozen
	}
	syms := toSymbols(s)
	if !g.containsSymbols(syms) {
		return false, nil
	}
	g.settleTail(syms)

	if len(syms) == 0 {
		// The empty string is accepted by the source node itself, which
		// is never reassigned or pruned like an ordinary path node: just
		// drop its accept flag.
		g.source.accept = false
		g.source.clearHash()
		g.register.unregister(g.source)
		g.size--
		g.prev = nil
		g.settled = true
		return true, nil
	}

	path := g.privatize(g.source, syms) // 4.3.3 step 1: splitTransitionPath
	for _, n := range path {            // step 2: unregister + invalidate
		g.register.unregister(n)
		n.clearHash()
	}

	end := path[len(syms)]
	if len(end.out) == 0 {
		// step 4: end is a dead end; prune the portion of the path used
		// only by str.
		k := soleSuffixLength(path, syms)
		parentIdx := len(syms) - k
		parent := path[parentIdx]
		g.arena.removeTransition(parent, syms[parentIdx])
		// The k-1 edges below the removed one belong to the detached chain.
		g.arena.transitions -= k - 1
		replaceOrRegister(g, g.source, syms[:parentIdx])
	} else {
		// step 5: end still has children used by other strings; just
		// clear its accept flag and re-minimize.
		if end.accept {
			end.accept = false
			end.clearHash()
		}
		replaceOrRegister(g, g.source, syms)
	}
	g.size--
	g.prev = nil
	g.settled = true
	return true, nil
}

// settleTail runs the deferred minimization of the previously inserted
// string's tail (spec 4.3.1 Phase A, computed using the incoming string to
// find the minimization start index). Phase C's finalization, with no
// incoming string, is done by finalize instead.
func (g *Graph) settleTail(incoming []Symbol) {
	if g.settled || g.prev == nil {
		return
	}
	m := msi(g.prev, incoming)
	if m != -1 {
		origin := g.mustWalkExact(g.prev[:m])
		replaceOrRegister(g, origin, g.prev[m:])
	}
	g.settled = true
}

// finalize runs Phase C: the deferred minimization of the very last string
// inserted, with no subsequent string to trigger it via Phase A. Query
// operations whose result depends on minimality (NodeCount,
// EquivalenceClassCount, Freeze) call this first.
func (g *Graph) finalize() {
	if g.settled || g.prev == nil {
		return
	}
	replaceOrRegister(g, g.source, g.prev)
	g.settled = true
}

// msi computes the minimization start index of spec 4.3.1 Phase A: -1 if p
// is a prefix of s (nothing to minimize yet, s only extends p's
// right-language), else the length of the longest common prefix of p and s.
func msi(p, s []Symbol) int {
	if len(p) <= len(s) && symbolsEqual(p, s[:len(p)]) {
		return -1
	}
	n := len(p)
	if len(s) < n {
		n = len(s)
	}
	i := 0
	for i < n && p[i] == s[i] {
		i++
	}
	return i
}

// walk follows syms from origin as far as transitions exist, returning the
// nodes visited (origin first) and the count of symbols consumed.
func walk(origin *node, syms []Symbol) (path []*node, consumed int) {
	path = make([]*node, 1, len(syms)+1)
	path[0] = origin
	cur := origin
	for i, s := range syms {
		next := cur.transition(s)
		if next == nil {
			return path, i
		}
		path = append(path, next)
		cur = next
	}
	return path, len(syms)
}

// firstConfluence walks syms from origin and returns the first node with
// incoming >= 2, together with the 0-based index of the symbol whose
// transition reached it (spec 4.3.4). found is false if the walk exhausts
// syms, or fails, before seeing a confluence node.
func firstConfluence(origin *node, syms []Symbol) (cnode *node, idx int, found bool) {
	cur := origin
	for i, s := range syms {
		next := cur.transition(s)
		if next == nil {
			return nil, 0, false
		}
		if next.incoming >= 2 {
			return next, i, true
		}
		cur = next
	}
	return nil, 0, false
}

// privatize walks syms from origin, cloning any confluence node it meets so
// that the resulting path (returned, origin first) is not shared with any
// other string. Cloning a confluence node always forces the very next node
// on the path to also become a confluence (the clone's edge to it is one
// more incoming reference), so a single forward pass with an incoming>=2
// check at each step is equivalent to, and implements, both spec 4.3.1 step
// 5's "clone the sub-path from the confluence node to the end of lcp" and
// spec 4.3.3 step 1's splitTransitionPath.
func (g *Graph) privatize(origin *node, syms []Symbol) []*node {
	path := make([]*node, 1, len(syms)+1)
	path[0] = origin
	cur := origin
	for _, s := range syms {
		child := cur.transition(s)
		if child == nil {
			panic(&InvariantError{Message: "privatize: missing transition on existing path"})
		}
		if child.incoming >= 2 {
			child = g.arena.clone(child, cur, s)
		}
		path = append(path, child)
		cur = child
	}
	return path
}

// insertPath implements spec 4.3.1 Phase B: add the (possibly already
// partially present) string represented by syms, returning true iff the
// accepted-string set changed.
func (g *Graph) insertPath(syms []Symbol) bool {
	walked, lcpLen := walk(g.source, syms)
	lcp := syms[:lcpLen]

	// Conservative invalidation: unregister the lcp prefix up to (not
	// including) its first confluence node, or the whole lcp if it has
	// none. Only the node immediately before a confluence actually
	// changes shape (its transition gets redirected to a clone below),
	// but unregistering nodes that turn out unchanged is harmless: they
	// are simply re-registered, unchanged, on the next pass.
	_, cidx, found := firstConfluence(g.source, lcp)
	unregEnd := lcpLen
	if found {
		unregEnd = cidx
	}
	for i := 0; i <= unregEnd; i++ {
		g.register.unregister(walked[i])
		walked[i].clearHash()
	}

	split := g.privatize(g.source, lcp)
	reached := split[lcpLen]
	suf := syms[lcpLen:]

	if len(suf) == 0 {
		if reached.accept {
			return false
		}
		reached.accept = true
		reached.clearHash()
		return true
	}

	cur := reached
	for _, sym := range suf {
		n := g.arena.newNode(false)
		g.arena.addTransition(cur, n, sym)
		g.alphabet.add(sym)
		cur = n
	}
	cur.accept = true
	return true
}

// soleSuffixLength returns k, the length of the trailing portion of a
// (now-private) string path that is used only by that string, per spec
// 4.3.5: the longest suffix whose intermediate nodes (excluding the source
// anchor and the terminal leaf) each have at most one outgoing transition
// and are not themselves accepting. path must be the full, privatized path
// for syms (path[0] == source, len(path) == len(syms)+1), and path's last
// element must already be known to have no outgoing transitions.
func soleSuffixLength(path []*node, syms []Symbol) int {
	l := len(syms)
	intermediate := path[1:l] // excludes source and the terminal leaf
	i := len(intermediate)
	for i > 0 && len(intermediate[i-1].out) <= 1 && !intermediate[i-1].accept {
		i--
	}
	return l - i
}

// replaceOrRegister is the classical Daciuk-Mihov "replace or register",
// adapted so that only the tail path of a single string (origin, str) is
// minimized on a given call, achieving amortized constant work across a
// sequence of insertions that share prefixes (spec 4.3.2). It recurses
// post-order: a node's children are canonicalized before the node itself
// is looked up in the register.
func replaceOrRegister(g *Graph, origin *node, str []Symbol) {
	if len(str) == 0 {
		return
	}
	sym := str[0]
	child := origin.transition(sym)
	if child == nil {
		glog.V(2).Infof("mdawg: replaceOrRegister found no transition for remaining path of length %d; already pruned", len(str))
		return
	}
	if len(child.out) > 0 && len(str) > 1 {
		replaceOrRegister(g, child, str[1:])
	}
	canonical := g.register.lookup(child)
	if canonical == nil {
		g.register.register(child)
		return
	}
	if canonical != child {
		for _, e := range child.out {
			e.to.incoming--
		}
		g.arena.transitions -= len(child.out)
		g.arena.reassign(origin, sym, child, canonical)
	}
}

// mustWalkExact walks syms from source, panicking if the path does not
// fully exist. Used only where the caller already knows the path must be
// present (e.g. the previously-inserted string in settleTail); failure
// indicates an internal inconsistency, not a caller error.
func (g *Graph) mustWalkExact(syms []Symbol) *node {
	path, consumed := walk(g.source, syms)
	if consumed != len(syms) {
		panic(&InvariantError{Message: "mustWalkExact: previously inserted path no longer exists"})
	}
	return path[len(path)-1]
}

// containsSymbols reports whether syms names an accepted string in the
// mutable graph.
func (g *Graph) containsSymbols(syms []Symbol) bool {
	path, consumed := walk(g.source, syms)
	if consumed != len(syms) {
		return false
	}
	return path[len(path)-1].accept
}

// Size returns the number of distinct strings currently accepted.
func (g *Graph) Size() int {
	if g.frozen != nil {
		return g.frozen.size
	}
	return g.size
}

// NodeCount returns the number of nodes reachable from source in the
// mutable representation. Once frozen, the mutable arena has been
// discarded and it returns the frozen graph's node count instead.
func (g *Graph) NodeCount() int {
	if g.frozen != nil {
		return g.frozen.nodeCount()
	}
	g.finalize()
	seen := map[*node]bool{}
	var visit func(n *node)
	visit = func(n *node) {
		if seen[n] {
			return
		}
		seen[n] = true
		for _, e := range n.out {
			visit(e.to)
		}
	}
	visit(g.source)
	return len(seen)
}

// TransitionCount returns the number of transitions in the mutable graph.
func (g *Graph) TransitionCount() int {
	if g.frozen != nil {
		return g.frozen.transitionCount()
	}
	return g.arena.transitions
}

// EquivalenceClassCount returns the number of classes currently registered
// in the mutable graph's Equivalence Register.
func (g *Graph) EquivalenceClassCount() int {
	if g.frozen != nil {
		return g.frozen.nodeCount()
	}
	g.finalize()
	return g.register.count()
}

// TransitionLabelSet returns every symbol that labels at least one
// transition.
func (g *Graph) TransitionLabelSet() []Symbol {
	if g.frozen != nil {
		out := make([]Symbol, len(g.frozen.alphabet.letters))
		copy(out, g.frozen.alphabet.letters)
		return out
	}
	return g.alphabet.sorted()
}

// Contains reports whether s is currently accepted.
func (g *Graph) Contains(s string) bool {
	syms := toSymbols(s)
	if g.frozen != nil {
		return g.frozen.contains(syms)
	}
	return g.containsSymbols(syms)
}
