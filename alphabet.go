// alphabet.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements the Alphabet Index: the mapping from a character
// symbol to the dense integer slot it occupies in a frozen graph's bitmap
// encoding, and the conversion between Go strings and the sequences of
// 16-bit code unit symbols the graph operates on.

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
	"sort"
	"unicode/utf16"
)

// Symbol is a single 16-bit code unit. Strings are treated as sequences of
// these, not as sequences of runes: no Unicode normalization is performed,
// and an astral-plane rune is represented as the surrogate pair utf16.Encode
// produces for it, exactly as it would be in a language whose native string
// type is UTF-16. This is a deliberate reading of spec's "16-bit code unit"
// Non-goal, not an accident of implementation; see DESIGN.md.
type Symbol uint16

// toSymbols converts a Go string into the Symbol sequence the graph
// operates on.
func toSymbols(s string) []Symbol {
	units := utf16.Encode([]rune(s))
	syms := make([]Symbol, len(units))
	for i, u := range units {
		syms[i] = Symbol(u)
	}
	return syms
}

// fromSymbols converts a Symbol sequence back into a Go string.
func fromSymbols(syms []Symbol) string {
	units := make([]uint16, len(syms))
	for i, s := range syms {
		units[i] = uint16(s)
	}
	return string(utf16.Decode(units))
}

// symbolsEqual reports whether two Symbol slices hold the same sequence.
func symbolsEqual(a, b []Symbol) bool {
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

// alphabetSet is the set of symbols that label at least one transition in
// a mutable graph. It is unordered during construction; slot assignment
// happens only at freeze time, in alphabet (numeric) order, per spec's
// open question about freeze-time alphabet ordering: a container that
// happened to preserve encounter order must not be relied upon to also be
// alphabetical, so slots are explicitly sorted when the alphabetIndex is
// built.
type alphabetSet map[Symbol]struct{}

func newAlphabetSet() alphabetSet {
	return make(alphabetSet)
}

func (a alphabetSet) add(sym Symbol) {
	a[sym] = struct{}{}
}

// sorted returns the symbols in ascending numeric order.
func (a alphabetSet) sorted() []Symbol {
	out := make([]Symbol, 0, len(a))
	for s := range a {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// alphabetIndex is the frozen, dense slot assignment built from an
// alphabetSet at freeze time. letters[slot] is the symbol occupying that
// slot; letterIndex is its inverse.
type alphabetIndex struct {
	letters     []Symbol
	letterIndex map[Symbol]int
}

func newAlphabetIndex(set alphabetSet) *alphabetIndex {
	letters := set.sorted()
	idx := make(map[Symbol]int, len(letters))
	for i, s := range letters {
		idx[s] = i
	}
	return &alphabetIndex{letters: letters, letterIndex: idx}
}

// slotOf returns the dense slot for sym, and false if sym never labels any
// transition in the frozen graph.
func (a *alphabetIndex) slotOf(sym Symbol) (int, bool) {
	slot, ok := a.letterIndex[sym]
	return slot, ok
}

// size returns the alphabet's cardinality, |Σ|.
func (a *alphabetIndex) size() int {
	return len(a.letters)
}
