// iter.go
// Copyright (C) 2023 Miðeind ehf.

// This file adapts the collectNavigator-based enumeration into Go 1.23
// range-over-func iterators. It is the idiomatic modern substitute for the
// teacher's save/resume Navigation machinery (navState, NavigateResumable,
// Resume in dawg.go/navigators.go): a caller that wants to stop partway
// through an enumeration simply stops ranging, instead of the traversal
// handing back an explicit resumable state object.

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

import (
	"iter"
	"strings"
)

// yieldNavigator drives a Go iterator's yield function directly from the
// traversal, instead of buffering results into a slice: Accept calls
// yield as each match is found, and IsAccepting reflects whether the
// consumer asked to stop by having yield return false.
type yieldNavigator struct {
	cond    enumerateCondition
	target  string
	prefix  string
	yield   func(string) bool
	stopped bool
}

func (y *yieldNavigator) IsAccepting() bool    { return !y.stopped }
func (y *yieldNavigator) PushEdge(Symbol) bool { return !y.stopped }
func (y *yieldNavigator) PopEdge() bool        { return !y.stopped }
func (y *yieldNavigator) Done()                {}

func (y *yieldNavigator) Accept(matched []Symbol, final bool) {
	if y.stopped || !final {
		return
	}
	word := y.prefix + fromSymbols(matched)
	switch y.cond {
	case enumerateSuffix:
		if !strings.HasSuffix(word, y.target) {
			return
		}
	case enumerateSubstring:
		if !strings.Contains(word, y.target) {
			return
		}
	}
	if !y.yield(word) {
		y.stopped = true
	}
}

// All returns an iterator over every string the graph accepts. Stopping
// the range early (break, or a yield returning false) halts the
// underlying traversal promptly rather than materializing the rest.
func (g *Graph) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		g.Navigate(&yieldNavigator{cond: enumerateAll, yield: yield})
	}
}

// All returns an iterator over every string the frozen graph accepts.
func (f *FrozenGraph) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		f.Navigate(&yieldNavigator{cond: enumerateAll, yield: yield})
	}
}

// WithPrefix returns an iterator over every accepted string with the
// given prefix.
func (g *Graph) WithPrefix(prefix string) iter.Seq[string] {
	syms := toSymbols(prefix)
	return func(yield func(string) bool) {
		var cur cursor
		if g.frozen != nil {
			idx := g.frozen.root
			for _, s := range syms {
				next, ok := g.frozen.transition(idx, s)
				if !ok {
					return
				}
				idx = next
			}
			cur = frozenCursor{f: g.frozen, i: idx}
		} else {
			path, consumed := walk(g.source, syms)
			if consumed != len(syms) {
				return
			}
			cur = nodeCursor{n: path[len(path)-1]}
		}
		y := &yieldNavigator{cond: enumerateAll, prefix: prefix, yield: yield}
		if cur.accepting() {
			if !yield(prefix) {
				return
			}
		}
		(&Navigation{navigator: y}).fromNode(cur, nil)
	}
}

// WithSuffix returns an iterator over every accepted string with the
// given suffix.
func (g *Graph) WithSuffix(suffix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g.Navigate(&yieldNavigator{cond: enumerateSuffix, target: suffix, yield: yield})
	}
}

// Containing returns an iterator over every accepted string containing
// the given substring.
func (g *Graph) Containing(substr string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g.Navigate(&yieldNavigator{cond: enumerateSubstring, target: substr, yield: yield})
	}
}
