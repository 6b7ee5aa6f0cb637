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

package errgen

import (
	"regexp"
	"strings"
)

// Type represents a Kelvin error type as it is declared in the taxonomy
// table this package's caller maintains (see errors_gen.go).
// Unlike a server-assigned error code, Code here is an index into that
// table: it is only ever compared for equality against the same table, not
// decoded structurally.
type Type struct {
	Code      uint32
	Name      string
	Ancestors []string
	Tags      []Tag
}

// PrivateName returns the private go name for this error type.
func (t *Type) PrivateName() string {
	return strings.ToLower(t.Name[0:1]) + t.Name[1:]
}

// entry is one row of the taxonomy table: its own name, its parent's name
// (empty for a root category), its table index, and its tag set.
type entry struct {
	name   string
	parent string
	code   uint32
	tags   []string
}

func parseEntry(e entry, lookup map[string]string) *Type {
	errType := &Type{
		Code: e.code,
		Name: e.name,
	}

	for _, tag := range e.tags {
		errType.Tags = append(errType.Tags, Tag(tag))
	}

	parent := lookup[e.name]
	for parent != "" {
		errType.Ancestors = append(errType.Ancestors, parent)
		parent = lookup[parent]
	}

	return errType
}

// ParseTypes extracts the error types from a taxonomy table expressed as
// rows of (name, parent, code, tags). Rows whose name does not end in
// "Error" are skipped, matching the suffix convention every concrete error
// struct in errors_gen.go follows.
func ParseTypes(rows []entry) []*Type {
	lookup := make(map[string]string, len(rows))
	for _, r := range rows {
		if !strings.HasSuffix(r.name, "Error") {
			continue
		}
		lookup[r.name] = r.parent
	}

	types := make([]*Type, 0, len(rows))
	for _, r := range rows {
		if !strings.HasSuffix(r.name, "Error") {
			continue
		}
		types = append(types, parseEntry(r, lookup))
	}

	return types
}

// Tag represents an Kelvin error tag.
type Tag string

// Identifyer returns the MixedCaps version of the tag.
func (t Tag) Identifyer() string {
	re := regexp.MustCompile(`[A-Z]+`)

	b := re.ReplaceAllFunc([]byte(t), func(b []byte) []byte {
		s := strings.ToLower(string(b[1:]))
		return append(b[0:1], []byte(s)...)
	})

	return strings.ReplaceAll(string(b), "_", "")
}

// ParseTags returns a list of unique tags.
func ParseTags(data [][]interface{}) []Tag {
	uniqueTags := map[Tag]interface{}{}

	for _, t := range data {
		for _, tagName := range t[6].([]interface{}) {
			uniqueTags[Tag(tagName.(string))] = nil
		}
	}

	tags := make([]Tag, 0, len(uniqueTags))
	for tag := range uniqueTags {
		tags = append(tags, tag)
	}

	return tags
}
