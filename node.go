// node.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements the mutable Node Arena: storage and identity for
// mutable graph nodes, and the transition operations (add, remove, reassign,
// clone) that the Incremental Builder composes into insertion and deletion.

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
	"encoding/binary"
	"hash/fnv"
	"sort"
)

// edge is a single outgoing transition, labeled by sym, to node to.
type edge struct {
	sym Symbol
	to  *node
}

// node is a single mutable graph state. Two nodes are equivalent (and thus
// candidates for merging under the Equivalence Register) iff they agree on
// accept, on the set of symbols in out, and corresponding children are the
// same node by pointer identity: see node.hash and nodesEquivalent.
type node struct {
	id         int64
	accept     bool
	out        []edge // kept sorted by sym ascending
	incoming   int
	cachedHash uint64
	hashValid  bool
}

// transition returns the child reached by sym, or nil if there is none.
func (n *node) transition(sym Symbol) *node {
	i := n.indexOf(sym)
	if i < 0 {
		return nil
	}
	return n.out[i].to
}

// indexOf returns the index of sym in n.out, or -1 if absent. out is kept
// sorted, so this is a binary search.
func (n *node) indexOf(sym Symbol) int {
	i := sort.Search(len(n.out), func(i int) bool { return n.out[i].sym >= sym })
	if i < len(n.out) && n.out[i].sym == sym {
		return i
	}
	return -1
}

// clearHash invalidates the memoized fingerprint hash. Must be called
// whenever accept changes or an outgoing transition is added, removed, or
// repointed.
func (n *node) clearHash() {
	n.hashValid = false
}

// hash returns the memoized structural fingerprint of n: a function of
// accept and of the (symbol, child identity) pairs in out. Because
// minimization proceeds leaves-first, by the time a parent's hash is
// computed its children's identities are already canonical, so comparing
// hashes (and, on collision, nodesEquivalent) is sufficient to detect
// equivalent right-languages.
func (n *node) hash() uint64 {
	if n.hashValid {
		return n.cachedHash
	}
	h := fnv.New64a()
	if n.accept {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	var buf [10]byte
	for _, e := range n.out {
		binary.LittleEndian.PutUint16(buf[0:2], uint16(e.sym))
		binary.LittleEndian.PutUint64(buf[2:10], uint64(e.to.id))
		h.Write(buf[:])
	}
	n.cachedHash = h.Sum64()
	n.hashValid = true
	return n.cachedHash
}

// nodesEquivalent implements the equivalence fingerprint of spec section 3:
// both accept or both not, the same symbol set on out, and corresponding
// children identical by pointer.
func nodesEquivalent(a, b *node) bool {
	if a == b {
		return true
	}
	if a.accept != b.accept || len(a.out) != len(b.out) {
		return false
	}
	for i := range a.out {
		if a.out[i].sym != b.out[i].sym || a.out[i].to != b.out[i].to {
			return false
		}
	}
	return true
}

// arena owns node identity. It does not otherwise hold the nodes: once a
// node becomes unreferenced (its last incoming transition removed or
// reassigned away), it is reclaimed by the Go garbage collector, which is
// exactly the "reclaimed lazily by losing all references" lifecycle spec
// section 3 describes for orphaned subgraphs.
type arena struct {
	nextID       int64
	nodeCount    int // number of nodes ever allocated, for diagnostics only
	transitions  int // number of live transitions, maintained incrementally
}

func newArena() *arena {
	return &arena{}
}

// newNode allocates a node with no outgoing transitions and incoming == 0.
func (a *arena) newNode(accept bool) *node {
	n := &node{id: a.nextID, accept: accept}
	a.nextID++
	a.nodeCount++
	return n
}

// addTransition inserts or overwrites from.out[sym] = to, updating to's
// incoming count and from's cached hash.
func (a *arena) addTransition(from, to *node, sym Symbol) {
	i := from.indexOf(sym)
	if i >= 0 {
		old := from.out[i].to
		old.incoming--
		a.transitions--
		from.out[i].to = to
	} else {
		j := sort.Search(len(from.out), func(j int) bool { return from.out[j].sym >= sym })
		from.out = append(from.out, edge{})
		copy(from.out[j+1:], from.out[j:])
		from.out[j] = edge{sym: sym, to: to}
	}
	to.incoming++
	a.transitions++
	from.clearHash()
}

// removeTransition removes from.out[sym], if present, decrementing the
// target's incoming count.
func (a *arena) removeTransition(from *node, sym Symbol) {
	i := from.indexOf(sym)
	if i < 0 {
		return
	}
	to := from.out[i].to
	from.out = append(from.out[:i], from.out[i+1:]...)
	to.incoming--
	a.transitions--
	from.clearHash()
}

// reassign atomically swaps the target of from's transition on sym from
// oldTo to newTo, adjusting both incoming counts.
func (a *arena) reassign(from *node, sym Symbol, oldTo, newTo *node) {
	i := from.indexOf(sym)
	if i < 0 || from.out[i].to != oldTo {
		panic(&InvariantError{Message: "reassign: no such transition to oldTo"})
	}
	from.out[i].to = newTo
	oldTo.incoming--
	newTo.incoming++
	from.clearHash()
}

// clone creates a shallow copy of node: the clone shares node's accept flag
// and out edges (each child's incoming is incremented accordingly), and
// newParent's transition on symFromParent is redirected from node to the
// clone. Used exclusively by confluence-splitting, where node has other
// incoming transitions that must keep referring to the original.
func (a *arena) clone(node, newParent *node, symFromParent Symbol) *node {
	c := a.newNode(node.accept)
	c.out = append([]edge(nil), node.out...)
	for _, e := range c.out {
		e.to.incoming++
		a.transitions++
	}
	a.reassign(newParent, symFromParent, node, c)
	return c
}
