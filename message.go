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

// Message is a protocol frame's one-byte type tag. Server-sent and
// client-sent tags are deliberately drawn from disjoint ranges (0x01-0x1F
// for server frames, 0x81-0x9F for client frames) so a dump of raw wire
// bytes is enough to tell the direction of a frame without tracking
// connection state.
type Message uint8

// Message types sent by server
const (
	Authentication Message = 0x01 + iota
	CommandComplete
	CommandDataDescription
	Data
	DumpBlock
	DumpHeader
	ErrorResponse
	LogMessage
	ParameterStatus
	ParseComplete
	ReadyForCommand
	RestoreReady
	ServerHandshake
	ServerKeyData
	StateDataDescription
)

// Message types sent by client
const (
	AuthenticationSASLInitialResponse Message = 0x81 + iota
	AuthenticationSASLResponse
	ClientHandshake
	DescribeStatement
	Dump
	Execute0pX
	ExecuteScript
	Flush
	Execute
	Parse
	Restore
	RestoreBlock
	RestoreEOF
	Sync
	Terminate
)
