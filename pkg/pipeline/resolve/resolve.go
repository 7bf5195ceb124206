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
	"fmt"

	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/trie"
	log "github.com/sirupsen/logrus"
)

// Engine stores AS table routes and answers longest-prefix-match queries.
// All inserts must happen before the first Lookup.
type Engine interface {
	Insert(route trie.Route)
	Lookup(address uint32) (trie.Route, bool)
	// Len returns the number of distinct prefixes stored.
	Len() int
}

// NewEngine creates the engine named by the resolve.engine setting
func NewEngine(params api.Resolve) (Engine, error) {
	log.Debugf("entering NewEngine, engine = %s", params.Engine)
	switch params.Engine {
	case "", api.ResolveEngineName("Trie"):
		return newTrieEngine(), nil
	case api.ResolveEngineName("Bart"):
		return newBartEngine(), nil
	}
	return nil, fmt.Errorf("unknown resolve engine %q", params.Engine)
}

type trieEngine struct {
	*trie.Trie
}

func newTrieEngine() *trieEngine {
	return &trieEngine{Trie: trie.New()}
}

func (e *trieEngine) Insert(route trie.Route) {
	e.InsertRoute(route)
}
