// ingest.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements file-backed StringIterable producers for bulk
// loading a graph from a word list, one entry per line, in the spirit of
// the teacher's own flag-driven main program that builds a game from a
// chosen word list at startup.

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
	"bufio"
	"io"
	"os"
	"strings"
)

// LineIterable adapts an io.Reader holding one word per line into a
// StringIterable. Blank lines are skipped; leading/trailing whitespace on
// each line is trimmed.
func LineIterable(r io.Reader) StringIterable {
	return func(yield func(string) error) error {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := yield(line); err != nil {
				return err
			}
		}
		return scanner.Err()
	}
}

// FileIterable adapts a word-list file, one word per line, into a
// StringIterable. The file is opened lazily, when the returned iterable is
// actually driven, and closed before it returns.
func FileIterable(path string) StringIterable {
	return func(yield func(string) error) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return LineIterable(f)(yield)
	}
}
