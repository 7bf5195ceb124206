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

package ingest

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/netobserv/ip2as/pkg/trie"
)

const tableFields = 3

// ParseRoute parses an AS table line: "<dotted-decimal address> <mask length> <AS number>".
// The AS number is kept verbatim.
func ParseRoute(text string) (trie.Route, error) {
	fields := strings.Fields(text)
	if len(fields) != tableFields {
		return trie.Route{}, &MalformedError{Text: text, Reason: "expected " + strconv.Itoa(tableFields) + " fields, got " + strconv.Itoa(len(fields))}
	}
	address, err := ParseAddress(fields[0])
	if err != nil {
		malformed := err.(*MalformedError)
		malformed.Text = text
		return trie.Route{}, malformed
	}
	maskLen, err := strconv.Atoi(fields[1])
	if err != nil || maskLen < 0 || maskLen > trie.AddressBits {
		return trie.Route{}, &MalformedError{Text: text, Reason: "mask length must be an integer in [0,32]"}
	}
	return trie.Route{Address: address, MaskLen: maskLen, ASN: fields[2]}, nil
}

// ParseAddress parses a dotted-decimal IPv4 address, ignoring surrounding whitespace.
func ParseAddress(text string) (uint32, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(text))
	if err != nil {
		return 0, &MalformedError{Text: text, Reason: "invalid address"}
	}
	if !addr.Is4() {
		return 0, &MalformedError{Text: text, Reason: "not an IPv4 address"}
	}
	return trie.AddrTo32(addr), nil
}
