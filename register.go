// register.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements the Equivalence Register: the mapping from a node's
// right-language fingerprint to the canonical node representing that class,
// consulted only during minimization passes (replaceOrRegister).

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

// register maps a node's structural hash to the bucket of canonical nodes
// currently registered under it. A bucket holds more than one entry only
// on a hash collision between otherwise-inequivalent nodes.
type register struct {
	classes map[uint64][]*node
}

func newRegister() *register {
	return &register{classes: make(map[uint64][]*node)}
}

// lookup returns the canonical node for n's equivalence class, or nil if
// none is currently registered.
func (r *register) lookup(n *node) *node {
	h := n.hash()
	for _, c := range r.classes[h] {
		if nodesEquivalent(c, n) {
			return c
		}
	}
	return nil
}

// register marks n canonical for its class. The precondition (no existing
// entry for that fingerprint) is the caller's responsibility: replaceOrRegister
// only calls this after lookup has returned nil.
func (r *register) register(n *node) {
	h := n.hash()
	r.classes[h] = append(r.classes[h], n)
}

// unregister drops n from the register if it is currently listed as
// canonical for some class. A no-op if n was never registered, which
// happens routinely: insertion and deletion invalidate registrations
// conservatively, ahead of nodes that may not have been registered yet.
func (r *register) unregister(n *node) {
	h := n.hash()
	bucket := r.classes[h]
	for i, c := range bucket {
		if c == n {
			r.classes[h] = append(bucket[:i], bucket[i+1:]...)
			if len(r.classes[h]) == 0 {
				delete(r.classes, h)
			}
			return
		}
	}
}

// count returns the number of currently-registered equivalence classes.
func (r *register) count() int {
	n := 0
	for _, bucket := range r.classes {
		n += len(bucket)
	}
	return n
}
