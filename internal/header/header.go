// This source file is part of the EdgeDB open source project.
//
// Copyright EdgeDB Inc. and the EdgeDB authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package header models the count + (key, value) header blocks that
// ride alongside Parse/Execute frames.
package header

import "encoding/binary"

// Block is a binary protocol header: a set of 16-bit keys to opaque
// byte-string values, encoded on the wire as a count followed by
// (key, value) pairs.
type Block map[uint16][]byte

const (
	// AllowCapabilities tells the server what capabilities it should allow
	// for the request this header is attached to.
	AllowCapabilities uint16 = 0xFF04
	allCapabilities   uint64 = 0xffffffffffffffff

	// ExplicitObjectIDs tells the server not to inject object ids.
	ExplicitObjectIDs = 0xFF05

	// AllowCapabilitiesTransaction is the transaction capability bit
	// within an AllowCapabilities header value.
	AllowCapabilitiesTransaction uint64 = 0b100

	// Capabilities is returned in PrepareComplete and CommandDataDescription
	// messages, reporting which capabilities the executed command used.
	Capabilities uint16 = 0x1001
)

// CapabilitiesMaskedOff builds an AllowCapabilities header value with the
// bits set in mask removed from the full capability set.
func CapabilitiesMaskedOff(mask uint64) []byte {
	bts := make([]byte, 8)
	binary.BigEndian.PutUint64(bts, allCapabilities^mask)
	return bts
}
