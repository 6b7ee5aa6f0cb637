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

// Package marshal documents marshaling interfaces.
//
// User defined marshaler/unmarshalers can be defined for any scalar Gel
// type except arrays. They must implement the interface for their type.
// For example a custom int64 unmarshaler should implement Int64Unmarshaler.
//
// # Optional Fields
//
// When shape fields in a query result are optional (not required) the client
// requires the out value's optional fields to implement OptionalUnmarshaler.
// For scalar types, this means that the field value will need to implement a
// custom marshaler interface i.e. Int64Unmarshaler AND OptionalUnmarshaler.
// For shapes, only OptionalUnmarshaler needs to be implemented.
package marshal

// OptionalUnmarshaler is used for optional (not required) shape field values.
type OptionalUnmarshaler interface {
	// SetMissing is call with true when the value is missing and false when
	// the value is present.
	SetMissing(bool)
}

// OptionalScalarUnmarshaler is implemented by optional scalar types.
type OptionalScalarUnmarshaler interface {
	Unset()
}

// OptionalMarshaler is used for optional (not required) shape field values.
type OptionalMarshaler interface {
	// Missing returns true when the value is missing.
	Missing() bool
}

// StrMarshaler is the interface implemented by an object
// that can marshal itself into the str wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-str
//
// MarshalKelvinStr encodes the receiver
// into a binary form and returns the result.
type StrMarshaler interface {
	MarshalKelvinStr() ([]byte, error)
}

// StrUnmarshaler is the interface implemented by an object
// that can unmarshal the str wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-str
//
// UnmarshalKelvinStr must be able to decode the str wire format.
// UnmarshalKelvinStr must copy the data if it wishes to retain the data
// after returning.
type StrUnmarshaler interface {
	UnmarshalKelvinStr(data []byte) error
}

// BoolMarshaler is the interface implemented by an object
// that can marshal itself into the bool wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bool
//
// MarshalKelvinBool encodes the receiver
// into a binary form and returns the result.
type BoolMarshaler interface {
	MarshalKelvinBool() ([]byte, error)
}

// BoolUnmarshaler is the interface implemented by an object
// that can unmarshal the bool wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bool
//
// UnmarshalKelvinBool must be able to decode the bool wire format.
// UnmarshalKelvinBool must copy the data if it wishes to retain the data
// after returning.
type BoolUnmarshaler interface {
	UnmarshalKelvinBool(data []byte) error
}

// JSONMarshaler is the interface implemented by an object
// that can marshal itself into the json wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-json
//
// MarshalKelvinJSON encodes the receiver
// into a binary form and returns the result.
type JSONMarshaler interface {
	MarshalKelvinJSON() ([]byte, error)
}

// JSONUnmarshaler is the interface implemented by an object
// that can unmarshal the json wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-json
//
// UnmarshalKelvinJSON must be able to decode the json wire format.
// UnmarshalKelvinJSON must copy the data if it wishes to retain the data
// after returning.
type JSONUnmarshaler interface {
	UnmarshalKelvinJSON(data []byte) error
}

// UUIDMarshaler is the interface implemented by an object
// that can marshal itself into the uuid wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-uuid
//
// MarshalKelvinUUID encodes the receiver
// into a binary form and returns the result.
type UUIDMarshaler interface {
	MarshalKelvinUUID() ([]byte, error)
}

// UUIDUnmarshaler is the interface implemented by an object
// that can unmarshal the uuid wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-uuid
//
// UnmarshalKelvinUUID must be able to decode the uuid wire format.
// UnmarshalKelvinUUID must copy the data if it wishes to retain the data
// after returning.
type UUIDUnmarshaler interface {
	UnmarshalKelvinUUID(data []byte) error
}

// BytesMarshaler is the interface implemented by an object
// that can marshal itself into the bytes wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bytes
//
// MarshalKelvinBytes encodes the receiver
// into a binary form and returns the result.
type BytesMarshaler interface {
	MarshalKelvinBytes() ([]byte, error)
}

// BytesUnmarshaler is the interface implemented by an object
// that can unmarshal the bytes wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bytes
//
// UnmarshalKelvinBytes must be able to decode the bytes wire format.
// UnmarshalKelvinBytes must copy the data if it wishes to retain the data
// after returning.
type BytesUnmarshaler interface {
	UnmarshalKelvinBytes(data []byte) error
}

// BigIntMarshaler is the interface implemented by an object
// that can marshal itself into the bigint wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bigint
//
// MarshalKelvinBigInt encodes the receiver
// into a binary form and returns the result.
type BigIntMarshaler interface {
	MarshalKelvinBigInt() ([]byte, error)
}

// BigIntUnmarshaler is the interface implemented by an object
// that can unmarshal the bigint wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-bigint
//
// UnmarshalKelvinBigInt must be able to decode the bigint wire format.
// UnmarshalKelvinBigInt must copy the data if it wishes to retain the data
// after returning.
type BigIntUnmarshaler interface {
	UnmarshalKelvinBigInt(data []byte) error
}

// DecimalMarshaler is the interface implemented by an object
// that can marshal itself into the decimal wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-decimal
//
// MarshalKelvinDecimal encodes the receiver
// into a binary form and returns the result.
type DecimalMarshaler interface {
	MarshalKelvinDecimal() ([]byte, error)
}

// DecimalUnmarshaler is the interface implemented by an object
// that can unmarshal the decimal wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-decimal
//
// UnmarshalKelvinDecimal must be able to decode the decimal wire format.
// UnmarshalKelvinDecimal must copy the data if it wishes to retain the data
// after returning.
type DecimalUnmarshaler interface {
	UnmarshalKelvinDecimal(data []byte) error
}

// DateTimeMarshaler is the interface implemented by an object
// that can marshal itself into the datetime wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-datetime
//
// MarshalKelvinDateTime encodes the receiver
// into a binary form and returns the result.
type DateTimeMarshaler interface {
	MarshalKelvinDateTime() ([]byte, error)
}

// DateTimeUnmarshaler is the interface implemented by an object
// that can unmarshal the datetime wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-datetime
//
// UnmarshalKelvinDateTime must be able to decode the datetime wire format.
// UnmarshalKelvinDateTime must copy the data if it wishes to retain the data
// after returning.
type DateTimeUnmarshaler interface {
	UnmarshalKelvinDateTime(data []byte) error
}

// LocalDateTimeMarshaler is the interface implemented by an object
// that can marshal itself into the local_datetime wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats
//
// MarshalKelvinLocalDateTime encodes the receiver
// into a binary form and returns the result.
type LocalDateTimeMarshaler interface {
	MarshalKelvinLocalDateTime() ([]byte, error)
}

// LocalDateTimeUnmarshaler is the interface implemented by an object
// that can unmarshal the local_datetime wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats
//
// UnmarshalKelvinLocalDateTime must be able to decode the local_datetime wire
// format. UnmarshalKelvinLocalDateTime must copy the data if it wishes to
// retain the data after returning.
type LocalDateTimeUnmarshaler interface {
	UnmarshalKelvinLocalDateTime(data []byte) error
}

// LocalDateMarshaler is the interface implemented by an object
// that can marshal itself into the local_date wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-local-date
//
// MarshalKelvinLocalDate encodes the receiver
// into a binary form and returns the result.
type LocalDateMarshaler interface {
	MarshalKelvinLocalDate() ([]byte, error)
}

// LocalDateUnmarshaler is the interface implemented by an object
// that can unmarshal the local_date wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-local-date
//
// UnmarshalKelvinLocalDate must be able to decode the local_date wire format.
// UnmarshalKelvinLocalDate must copy the data if it wishes to retain the data
// after returning.
type LocalDateUnmarshaler interface {
	UnmarshalKelvinLocalDate(data []byte) error
}

// LocalTimeMarshaler is the interface implemented by an object
// that can marshal itself into the local_time wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-local-time
//
// MarshalKelvinLocalTime encodes the receiver
// into a binary form and returns the result.
type LocalTimeMarshaler interface {
	MarshalKelvinLocalTime() ([]byte, error)
}

// LocalTimeUnmarshaler is the interface implemented by an object
// that can unmarshal the local_time wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-local-time
//
// UnmarshalKelvinLocalTime must be able to decode the local_time wire format.
// UnmarshalKelvinLocalTime must copy the data if it wishes to retain the data
// after returning.
type LocalTimeUnmarshaler interface {
	UnmarshalKelvinLocalTime(data []byte) error
}

// DurationMarshaler is the interface implemented by an object
// that can marshal itself into the duration wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-duration
//
// MarshalKelvinDuration encodes the receiver
// into a binary form and returns the result.
type DurationMarshaler interface {
	MarshalKelvinDuration() ([]byte, error)
}

// DurationUnmarshaler is the interface implemented by an object
// that can unmarshal the duration wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-duration
//
// UnmarshalKelvinDuration must be able to decode the duration wire format.
// UnmarshalKelvinDuration must copy the data if it wishes to retain the data
// after returning.
type DurationUnmarshaler interface {
	UnmarshalKelvinDuration(data []byte) error
}

// RelativeDurationMarshaler is the interface implemented by an object that can
// marshal itself into the cal::relative_duration wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats
//
// MarshalKelvinRelativeDuration encodes the receiver into a binary form and
// returns the result.
type RelativeDurationMarshaler interface {
	MarshalKelvinRelativeDuration() ([]byte, error)
}

// RelativeDurationUnmarshaler is the interface implemented by an object that
// can unmarshal the cal::relative_duration wire format representation of
// itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-duration
//
// UnmarshalKelvinRelativeDuration must be able to decode the
// cal::relative_duration wire format.  UnmarshalKelvinRelativeDuration must
// copy the data if it wishes to retain the data after returning.
type RelativeDurationUnmarshaler interface {
	UnmarshalKelvinRelativeDuration(data []byte) error
}

// DateDurationMarshaler is the interface implemented by an object that can
// marshal itself into the cal::date_duration wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats
//
// MarshalKelvinDateDuration encodes the receiver into a binary form and
// returns the result.
type DateDurationMarshaler interface {
	MarshalKelvinDateDuration() ([]byte, error)
}

// DateDurationUnmarshaler is the interface implemented by an object that
// can unmarshal the cal::date_duration wire format representation of
// itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-duration
//
// UnmarshalKelvinDateDuration must be able to decode the
// cal::date_duration wire format.  UnmarshalKelvinDateDuration must
// copy the data if it wishes to retain the data after returning.
type DateDurationUnmarshaler interface {
	UnmarshalKelvinDateDuration(data []byte) error
}

// Int16Marshaler is the interface implemented by an object
// that can marshal itself into the int16 wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int16
//
// MarshalKelvinInt16 encodes the receiver
// into a binary form and returns the result.
type Int16Marshaler interface {
	MarshalKelvinInt16() ([]byte, error)
}

// Int16Unmarshaler is the interface implemented by an object
// that can unmarshal the int16 wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int16
//
// UnmarshalKelvinInt16 must be able to decode the int16 wire format.
// UnmarshalKelvinInt16 must copy the data if it wishes to retain the data
// after returning.
type Int16Unmarshaler interface {
	UnmarshalKelvinInt16(data []byte) error
}

// Int32Marshaler is the interface implemented by an object
// that can marshal itself into the int32 wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int32
//
// MarshalKelvinInt32 encodes the receiver
// into a binary form and returns the result.
type Int32Marshaler interface {
	MarshalKelvinInt32() ([]byte, error)
}

// Int32Unmarshaler is the interface implemented by an object
// that can unmarshal the int32 wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int32
//
// UnmarshalKelvinInt32 must be able to decode the int32 wire format.
// UnmarshalKelvinInt32 must copy the data if it wishes to retain the data
// after returning.
type Int32Unmarshaler interface {
	UnmarshalKelvinInt32(data []byte) error
}

// Int64Marshaler is the interface implemented by an object
// that can marshal itself into the int64 wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int64
//
// MarshalKelvinInt64 encodes the receiver
// into a binary form and returns the result.
type Int64Marshaler interface {
	MarshalKelvinInt64() ([]byte, error)
}

// Int64Unmarshaler is the interface implemented by an object
// that can unmarshal the int64 wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-int64
//
// UnmarshalKelvinInt64 must be able to decode the int64 wire format.
// UnmarshalKelvinInt64 must copy the data if it wishes to retain the data
// after returning.
type Int64Unmarshaler interface {
	UnmarshalKelvinInt64(data []byte) error
}

// Float32Marshaler is the interface implemented by an object
// that can marshal itself into the float32 wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-float32
//
// MarshalKelvinFloat32 encodes the receiver
// into a binary form and returns the result.
type Float32Marshaler interface {
	MarshalKelvinFloat32() ([]byte, error)
}

// Float32Unmarshaler is the interface implemented by an object
// that can unmarshal the float32 wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-float32
//
// UnmarshalKelvinFloat32 must be able to decode the float32 wire format.
// UnmarshalKelvinFloat32 must copy the data if it wishes to retain the data
// after returning.
type Float32Unmarshaler interface {
	UnmarshalKelvinFloat32(data []byte) error
}

// Float64Marshaler is the interface implemented by an object
// that can marshal itself into the float64 wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-float64
//
// MarshalKelvinFloat64 encodes the receiver
// into a binary form and returns the result.
type Float64Marshaler interface {
	MarshalKelvinFloat64() ([]byte, error)
}

// Float64Unmarshaler is the interface implemented by an object
// that can unmarshal the float64 wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-float64
//
// UnmarshalKelvinFloat64 must be able to decode the float64 wire format.
// UnmarshalKelvinFloat64 must copy the data if it wishes to retain the data
// after returning.
type Float64Unmarshaler interface {
	UnmarshalKelvinFloat64(data []byte) error
}

// MemoryMarshaler is the interface implemented by an object
// that can marshal itself into the memory wire format.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-memory
//
// MarshalKelvinMemory encodes the receiver
// into a binary form and returns the result.
type MemoryMarshaler interface {
	MarshalKelvinMemory() ([]byte, error)
}

// MemoryUnmarshaler is the interface implemented by an object
// that can unmarshal the memory wire format representation of itself.
// https://www.kelvin.com/docs/internals/protocol/dataformats#std-memory
//
// UnmarshalKelvinMemory must be able to decode the memory wire format.
// UnmarshalKelvinMemory must copy the data if it wishes to retain the data
// after returning.
type MemoryUnmarshaler interface {
	UnmarshalKelvinMemory(data []byte) error
}
