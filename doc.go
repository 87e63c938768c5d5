// doc.go
// Copyright (C) 2023 Miðeind ehf.

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

// Package mdawg implements a Minimal Deterministic Acyclic Word Graph: a
// deterministic finite automaton over strings in which every state is the
// root of a unique right-language, so that equivalent subgraphs are always
// shared. It supports incremental insertion and deletion while maintaining
// minimality, and a one-way freeze into a compact, array-backed, read-only
// representation for high-volume lookup and enumeration.
package mdawg
