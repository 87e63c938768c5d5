// navigator.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements the Navigator abstraction of spec 4.6: a
// depth-first traversal callback interface, generalized here to run
// identically over the mutable graph and the frozen graph behind a small
// internal cursor interface, and the concrete navigators (prefix, suffix,
// substring, unconstrained) that the enumeration operations are built on.
// The traversal shape is grounded on the teacher's Navigation.FromNode/
// FromEdge; the per-symbol (rather than per-prefix-run) edge granularity
// follows from mdawg's frozen form not compressing chains of singleton
// transitions the way the teacher's on-disk DAWG format does.

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

import "strings"

// Navigator controls a depth-first traversal of a graph: Navigation calls
// back into it at every edge and every accepting state it visits, and the
// navigator decides which edges are worth entering and when the
// traversal as a whole is done.
type Navigator interface {
	// IsAccepting reports whether the navigator is still willing to
	// receive more matches. Once it returns false, the traversal unwinds.
	IsAccepting() bool
	// PushEdge is asked, for each outgoing transition in symbol order,
	// whether the navigation should descend into it.
	PushEdge(sym Symbol) bool
	// Accept is called whenever a descended edge lands on a node; final
	// is true iff that node is an accepting state, i.e. matched is a
	// complete word in the graph.
	Accept(matched []Symbol, final bool)
	// PopEdge is called after an entered edge's whole subtree has been
	// explored; returning false stops further sibling edges from being
	// tried at the current node.
	PopEdge() bool
	// Done is called exactly once, when the traversal finishes.
	Done()
}

// cursor abstracts a single position in either the mutable or the frozen
// graph, so Navigation needs only one traversal implementation.
type cursor interface {
	accepting() bool
	edges() []Symbol
	step(sym Symbol) cursor
}

type nodeCursor struct{ n *node }

func (c nodeCursor) accepting() bool { return c.n.accept }

func (c nodeCursor) edges() []Symbol {
	syms := make([]Symbol, len(c.n.out))
	for i, e := range c.n.out {
		syms[i] = e.sym
	}
	return syms
}

func (c nodeCursor) step(sym Symbol) cursor {
	return nodeCursor{n: c.n.transition(sym)}
}

type frozenCursor struct {
	f *FrozenGraph
	i uint32
}

func (c frozenCursor) accepting() bool { return c.f.isAccepting(c.i) }

func (c frozenCursor) edges() []Symbol {
	slots := c.f.childSlots(c.i)
	syms := make([]Symbol, len(slots))
	for i, s := range slots {
		syms[i] = s.sym
	}
	return syms
}

func (c frozenCursor) step(sym Symbol) cursor {
	next, _ := c.f.transition(c.i, sym)
	return frozenCursor{f: c.f, i: next}
}

// Navigation runs navigator over a graph starting at root.
type Navigation struct {
	navigator Navigator
}

func (nav *Navigation) fromNode(cur cursor, matched []Symbol) {
	for _, sym := range cur.edges() {
		if !nav.navigator.PushEdge(sym) {
			continue
		}
		next := cur.step(sym)
		m := append(append([]Symbol(nil), matched...), sym)
		nav.navigator.Accept(m, next.accepting())
		if nav.navigator.IsAccepting() {
			nav.fromNode(next, m)
		}
		if !nav.navigator.PopEdge() {
			break
		}
	}
}

// Navigate runs navigator over g's mutable graph, starting at source.
func (g *Graph) Navigate(navigator Navigator) {
	if g.frozen != nil {
		g.frozen.Navigate(navigator)
		return
	}
	nav := &Navigation{navigator: navigator}
	if navigator.IsAccepting() {
		root := nodeCursor{n: g.source}
		navigator.Accept(nil, root.accepting())
		if navigator.IsAccepting() {
			nav.fromNode(root, nil)
		}
	}
	navigator.Done()
}

// Navigate runs navigator over f, starting at its root.
func (f *FrozenGraph) Navigate(navigator Navigator) {
	nav := &Navigation{navigator: navigator}
	if navigator.IsAccepting() {
		root := frozenCursor{f: f, i: f.root}
		navigator.Accept(nil, root.accepting())
		if navigator.IsAccepting() {
			nav.fromNode(root, nil)
		}
	}
	navigator.Done()
}

// enumerateCondition selects which enumeration operation a
// collectNavigator is serving.
type enumerateCondition int

const (
	enumerateAll enumerateCondition = iota
	enumerateSuffix
	enumerateSubstring
)

// collectNavigator gathers every accepted string the traversal reaches,
// optionally filtered by a suffix or substring condition; used to
// implement GetAllStrings, StringsEndingWith and StringsContaining. It
// always accepts every edge: the filtering happens once, at word
// completion, rather than by pruning the walk, since neither condition
// can be decided from a partial prefix alone.
type collectNavigator struct {
	cond    enumerateCondition
	target  string
	prefix  string
	results []string
}

func (c *collectNavigator) IsAccepting() bool   { return true }
func (c *collectNavigator) PushEdge(Symbol) bool { return true }
func (c *collectNavigator) PopEdge() bool       { return true }
func (c *collectNavigator) Done()               {}

func (c *collectNavigator) Accept(matched []Symbol, final bool) {
	if !final {
		return
	}
	word := c.prefix + fromSymbols(matched)
	switch c.cond {
	case enumerateSuffix:
		if !strings.HasSuffix(word, c.target) {
			return
		}
	case enumerateSubstring:
		if !strings.Contains(word, c.target) {
			return
		}
	}
	c.results = append(c.results, word)
}

// GetAllStrings returns every string the graph accepts, in no particular
// order.
func (g *Graph) GetAllStrings() []string {
	if g.frozen != nil {
		return g.cache.lookup("all:", func(string) []string {
			return g.frozen.GetAllStrings()
		})
	}
	nav := &collectNavigator{cond: enumerateAll}
	g.Navigate(nav)
	return nav.results
}

// GetAllStrings returns every string the frozen graph accepts.
func (f *FrozenGraph) GetAllStrings() []string {
	nav := &collectNavigator{cond: enumerateAll}
	f.Navigate(nav)
	return nav.results
}

// StringsStartingWith returns every accepted string with the given
// prefix. It walks the prefix directly rather than filtering a full
// enumeration, since the prefix fixes an exact subgraph to enumerate from.
func (g *Graph) StringsStartingWith(prefix string) []string {
	syms := toSymbols(prefix)
	if g.frozen != nil {
		return g.cache.lookup("prefix:"+prefix, func(string) []string {
			return g.frozen.stringsStartingWith(prefix, syms)
		})
	}
	path, consumed := walk(g.source, syms)
	if consumed != len(syms) {
		return nil
	}
	origin := path[len(path)-1]
	nav := &collectNavigator{cond: enumerateAll, prefix: prefix}
	sub := &Navigation{navigator: nav}
	if nav.IsAccepting() {
		if origin.accept {
			nav.results = append(nav.results, prefix)
		}
		sub.fromNode(nodeCursor{n: origin}, nil)
	}
	nav.Done()
	return nav.results
}

func (f *FrozenGraph) stringsStartingWith(prefix string, syms []Symbol) []string {
	cur := f.root
	for _, s := range syms {
		next, ok := f.transition(cur, s)
		if !ok {
			return nil
		}
		cur = next
	}
	nav := &collectNavigator{cond: enumerateAll, prefix: prefix}
	sub := &Navigation{navigator: nav}
	if f.isAccepting(cur) {
		nav.results = append(nav.results, prefix)
	}
	sub.fromNode(frozenCursor{f: f, i: cur}, nil)
	nav.Done()
	return nav.results
}

// StringsEndingWith returns every accepted string with the given suffix.
// There is no suffix index in either representation, so this enumerates
// the whole graph and filters.
func (g *Graph) StringsEndingWith(suffix string) []string {
	if g.frozen != nil {
		return g.cache.lookup("suffix:"+suffix, func(string) []string {
			return g.frozen.StringsEndingWith(suffix)
		})
	}
	nav := &collectNavigator{cond: enumerateSuffix, target: suffix}
	g.Navigate(nav)
	return nav.results
}

// StringsEndingWith returns every frozen-graph string with the given
// suffix.
func (f *FrozenGraph) StringsEndingWith(suffix string) []string {
	nav := &collectNavigator{cond: enumerateSuffix, target: suffix}
	f.Navigate(nav)
	return nav.results
}

// StringsContaining returns every accepted string containing the given
// substring anywhere within it.
func (g *Graph) StringsContaining(substr string) []string {
	if g.frozen != nil {
		return g.cache.lookup("contains:"+substr, func(string) []string {
			return g.frozen.StringsContaining(substr)
		})
	}
	nav := &collectNavigator{cond: enumerateSubstring, target: substr}
	g.Navigate(nav)
	return nav.results
}

// StringsContaining returns every frozen-graph string containing the
// given substring anywhere within it.
func (f *FrozenGraph) StringsContaining(substr string) []string {
	nav := &collectNavigator{cond: enumerateSubstring, target: substr}
	f.Navigate(nav)
	return nav.results
}
