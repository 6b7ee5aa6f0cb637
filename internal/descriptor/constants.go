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

package descriptor

import "github.com/kelvindb/kelvin-go/internal/ktypes"

// The granular descriptor stream carries more node kinds than the
// original eight-member Type enum: sparse input shapes, ranges, bare
// object shapes, compound (union/intersection) types, multiranges and
// the SQL-tunnel record shape. They are assigned values continuing
// from Enum rather than colliding with it.
const (
	// InputShape represents a sparse object descriptor used for
	// command arguments and session state.
	InputShape Type = iota + 8

	// Range represents the range descriptor type.
	Range

	// ObjectShape represents a bare object shape carried without a
	// backing type id.
	ObjectShape

	// Compound represents a union or intersection of object types.
	Compound

	// MultiRange represents the multirange descriptor type.
	MultiRange

	// SQLRecord represents a tuple-shaped row produced by a tunneled
	// SQL statement.
	SQLRecord
)

// IDZero is the nil descriptor id, used by codecs that carry no shape
// of their own (e.g. the no-op codec installed for empty command
// results).
var IDZero ktypes.UUID
