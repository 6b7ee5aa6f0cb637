// This source file is part of the EdgeDB open source project.
//
// Copyright 2020-present EdgeDB Inc. and the EdgeDB authors.
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

// Package message enumerates the single-byte frame type tags that open
// every message on the wire, as laid out in §6 of the protocol. It is a
// standalone, untyped mirror of the client package's Message type, kept
// for buffer-layer tests that should not need to import the client
// package just to name a frame tag.
package message

// Message types sent by server, numbered 0x01-0x1F.
const (
	Authentication = 0x01 + iota
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

// Message types sent by client, numbered 0x81-0x9F.
const (
	AuthenticationSASLInitialResponse = 0x81 + iota
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
