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

package gel

import (
	"runtime"

	"github.com/kelvindb/kelvin-go/internal"
	"github.com/kelvindb/kelvin-go/internal/cache"
	"github.com/kelvindb/kelvin-go/internal/snc"
)

var (
	descCache = cache.New(1_000)
	rnd       = snc.NewJitterSource()

	defaultConcurrency = max(4, runtime.NumCPU())

	protocolVersionMin  = protocolVersion0p13
	protocolVersionMax  = protocolVersion3p0
	protocolVersion0p13 = internal.ProtocolVersion{Major: 0, Minor: 13}
	protocolVersion1p0  = internal.ProtocolVersion{Major: 1, Minor: 0}
	protocolVersion2p0  = internal.ProtocolVersion{Major: 2, Minor: 0}
	protocolVersion3p0  = internal.ProtocolVersion{Major: 3, Minor: 0}

	txCapabilities   = capabilitiesAll ^ capabilitiesSessionConfig
	userCapabilities = capabilitiesAll ^
		(capabilitiesSessionConfig | capabilitiesTransaction)
)

// capabilityMask is a bitmask of server-side behaviors a command is
// allowed to trigger, negotiated during the handshake (§4.1 capability
// negotiation) and attached to every subsequent Execute/Parse frame.
type capabilityMask = uint64

const (
	capabilitiesSessionConfig capabilityMask = 1 << (iota + 1)
	capabilitiesTransaction
	capabilitiesDDL

	capabilitiesAll capabilityMask = 1<<64 - 1
)
