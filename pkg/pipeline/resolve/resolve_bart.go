/*
 * Copyright (C) 2022 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package resolve

import (
	"github.com/gaissmai/bart"
	"github.com/netobserv/ip2as/pkg/trie"
)

// bartEngine keeps the routes in a bart.Table, keyed by their masked prefix.
type bartEngine struct {
	table  bart.Table[trie.Route]
	routes int
}

func newBartEngine() *bartEngine {
	return &bartEngine{}
}

func (e *bartEngine) Insert(route trie.Route) {
	e.table.Update(route.Prefix(), func(_ trie.Route, found bool) trie.Route {
		if !found {
			e.routes++
		}
		return route
	})
}

func (e *bartEngine) Lookup(address uint32) (trie.Route, bool) {
	return e.table.Lookup(trie.AddrFrom32(address))
}

func (e *bartEngine) Len() int {
	return e.routes
}
