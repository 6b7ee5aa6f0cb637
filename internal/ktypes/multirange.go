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

package ktypes

// MultiRangeInt32 is a type alias for a slice of RangeInt32 values.
type MultiRangeInt32 = []RangeInt32

// MultiRangeInt64 is a type alias for a slice of RangeInt64 values.
type MultiRangeInt64 = []RangeInt64

// MultiRangeFloat32 is a type alias for a slice of RangeFloat32 values.
type MultiRangeFloat32 = []RangeFloat32

// MultiRangeFloat64 is a type alias for a slice of RangeFloat64 values.
type MultiRangeFloat64 = []RangeFloat64

// MultiRangeDateTime is a type alias for a slice of RangeDateTime values.
type MultiRangeDateTime = []RangeDateTime

// MultiRangeLocalDateTime is a type alias for a slice of
// RangeLocalDateTime values.
type MultiRangeLocalDateTime = []RangeLocalDateTime

// MultiRangeLocalDate is a type alias for a slice of
// RangeLocalDate values.
type MultiRangeLocalDate = []RangeLocalDate
