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

package trie

import (
	"encoding/binary"
	"net/netip"
	"strconv"
)

// AddrTo32 returns the 32-bit value of an IPv4 address.
// The caller must ensure addr.Is4().
func AddrTo32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

// AddrFrom32 returns the IPv4 address for a 32-bit value.
func AddrFrom32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// Network returns the route address in dotted-decimal form.
func (r Route) Network() string {
	return AddrFrom32(r.Address).String()
}

// Prefix returns the route as a masked netip.Prefix.
func (r Route) Prefix() netip.Prefix {
	return netip.PrefixFrom(AddrFrom32(r.Address), r.MaskLen).Masked()
}

// String formats the route as "<network>/<mask> <asn>".
func (r Route) String() string {
	return r.Network() + "/" + strconv.Itoa(r.MaskLen) + " " + r.ASN
}
