// graphviz.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements a Graphviz DOT exporter over the frozen graph, for
// visualizing the shared-suffix structure that minimization produces. It
// is a debugging adjunct, not part of the core lookup path.

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
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT description of f to w: one node per
// frozen graph index, double-circled if accepting, with edges labeled by
// the symbol they carry.
func (f *FrozenGraph) WriteDOT(w io.Writer) error {
	if _, err := io.WriteString(w, "digraph mdawg {\n\trankdir=LR;\n"); err != nil {
		return err
	}
	for i := 0; i < f.nodeCount(); i++ {
		shape := "circle"
		if f.isAccepting(uint32(i)) {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tn%d [shape=%s,label=\"%d\"];\n", i, shape, i); err != nil {
			return err
		}
	}
	for i := 0; i < f.nodeCount(); i++ {
		for _, slot := range f.childSlots(uint32(i)) {
			label := fromSymbols([]Symbol{slot.sym})
			if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=\"%s\"];\n", i, slot.child, label); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, "}\n")
	return err
}
