// errors.go
// Copyright (C) 2023 Miðeind ehf.

// This file defines the error kinds of spec section 7: a mutator called
// after freeze, and the panic raised on an internal inconsistency that
// indicates a bug rather than a recoverable condition. An iterator fault has
// no type of its own: the caller-supplied producer's error is propagated
// unchanged.

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

import "errors"

// ErrFrozen is returned by any mutating operation (Add, AddIterable,
// Remove) called after Freeze. It never alters graph state.
var ErrFrozen = errors.New("mdawg: graph is already frozen")

// InvariantError indicates that the mutable graph's internal bookkeeping
// (incoming counts, the equivalence register, a reassign target) has gone
// inconsistent. This can only mean a bug in the builder itself, not a
// caller error, so it is raised via panic rather than returned: per spec
// section 7, "implementations should panic/abort rather than attempt
// recovery".
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "mdawg: internal invariant violated: " + e.Message
}
