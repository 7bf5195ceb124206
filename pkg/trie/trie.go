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

// Package trie implements a binary prefix tree over 32-bit addresses, answering
// longest-prefix-match queries for autonomous system ownership.
package trie

import "fmt"

// AddressBits is the width of the addresses stored in the trie.
const AddressBits = 32

// Route is a network block and the autonomous system announcing it.
// Address is kept as inserted: bits beyond MaskLen are carried but never matched.
type Route struct {
	Address uint32
	MaskLen int
	ASN     string
}

type node struct {
	children [2]*node
	owner    *Route
}

// Trie is a binary tree where each edge consumes one address bit, most significant first.
// A node at depth d owns the route whose mask length is d, if one was inserted.
// The zero value is an empty trie ready to use. A Trie must be fully built before it is
// queried; lookups may then run concurrently since they never write.
type Trie struct {
	root   node
	routes int
	nodes  int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{}
}

func bitAt(address uint32, depth int) uint32 {
	return (address >> (AddressBits - 1 - depth)) & 1
}

// Insert stores asn as the owner of the first maskLen bits of address.
// Inserting a prefix that is already owned replaces its owner: the last insert wins.
// Insert panics if maskLen is outside [0, AddressBits].
func (t *Trie) Insert(address uint32, maskLen int, asn string) {
	if maskLen < 0 || maskLen > AddressBits {
		panic(fmt.Sprintf("trie: mask length %d out of range [0,%d]", maskLen, AddressBits))
	}
	current := &t.root
	for depth := 0; depth < maskLen; depth++ {
		b := bitAt(address, depth)
		if current.children[b] == nil {
			current.children[b] = &node{}
			t.nodes++
		}
		current = current.children[b]
	}
	if current.owner == nil {
		t.routes++
	}
	current.owner = &Route{Address: address, MaskLen: maskLen, ASN: asn}
}

// InsertRoute is Insert for an already assembled Route.
func (t *Trie) InsertRoute(r Route) {
	t.Insert(r.Address, r.MaskLen, r.ASN)
}

// Lookup returns the route with the longest mask among those covering address.
// ok is false when no stored prefix covers it, which differs from a /0 match.
// A lookup follows at most AddressBits edges, so it visits at most AddressBits+1 nodes
// (the root and one per level).
func (t *Trie) Lookup(address uint32) (r Route, ok bool) {
	best, _ := t.lookup(address)
	if best == nil {
		return Route{}, false
	}
	return *best, true
}

// lookup also reports how many edges were followed.
func (t *Trie) lookup(address uint32) (best *Route, steps int) {
	current := &t.root
	for {
		if current.owner != nil {
			best = current.owner
		}
		if steps == AddressBits {
			return best, steps
		}
		next := current.children[bitAt(address, steps)]
		if next == nil {
			return best, steps
		}
		current = next
		steps++
	}
}

// Len returns the number of distinct prefixes owned in the trie.
func (t *Trie) Len() int {
	return t.routes
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes + 1
}
