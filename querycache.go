// querycache.go
// Copyright (C) 2023 Miðeind ehf.

// This file implements queryCache, an LRU cache of enumeration results
// keyed by operation and argument, fronting the frozen graph's
// enumeration operations exactly the way the teacher's crossCache fronts
// repeated cross-set lookups over the same dictionary.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// defaultCacheSize bounds the number of distinct enumeration queries a
// frozen graph remembers. Only allocated once a graph is frozen: the
// mutable graph's results are too volatile across Add/Remove to be worth
// caching.
const defaultCacheSize = 2048

// queryCache memoizes the results of enumeration operations
// (GetAllStrings, StringsStartingWith, StringsEndingWith,
// StringsContaining) against a
// frozen graph, which never changes after Freeze and so can be cached
// without any invalidation story.
type queryCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

func newQueryCache(size int) *queryCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &queryCache{lru: lru}
}

// lookup returns the cached result for key, computing and storing it via
// fetch on a miss.
func (qc *queryCache) lookup(key string, fetch func(string) []string) []string {
	qc.mux.Lock()
	defer qc.mux.Unlock()
	if v, ok := qc.lru.Get(key); ok {
		return v.([]string)
	}
	v := fetch(key)
	qc.lru.Add(key, v)
	return v
}
