/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package types implements the field-type descriptors of the data model (spec §3, §4.C): the
// scalar/record/sequence/optional/type-ref vocabulary a graph.Field's declared type is built from.
//
// The source this module is modeled on dispatches on these with runtime isinstance checks
// (RecordMeta/SequenceMeta/OptionalMeta/TypeRef). Per the design notes, this is re-expressed here
// as a closed, tagged variant: Descriptor is implemented only by the five structs in this file, and
// consumers (result.Denormalize in particular) type-switch over those five structs; Kind() reports
// the same tag as a value.
package types

// Kind tags which concrete Descriptor a value is.
type Kind int

// Enumeration of Kind.
const (
	KindScalar Kind = iota
	KindRecord
	KindSequence
	KindOptional
	KindTypeRef
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindRecord:
		return "Record"
	case KindSequence:
		return "Sequence"
	case KindOptional:
		return "Optional"
	case KindTypeRef:
		return "TypeRef"
	default:
		return "Unknown"
	}
}

// Descriptor is a field-type descriptor. It is a closed sum type: Kind reports which of Scalar,
// Record, Sequence, Optional, or TypeRef the value is, and callers type-switch (or type-assert
// after checking Kind) to recover the concrete struct.
type Descriptor interface {
	Kind() Kind

	// descriptor is unexported so only the five types in this file can implement Descriptor.
	descriptor()
}

// Scalar is an opaque leaf type identified by name (e.g. "Integer", "String"). Two scalars are the
// same type iff their Name is equal.
type Scalar struct {
	Name string
}

// Kind implements Descriptor.
func (Scalar) Kind() Kind {
	return KindScalar
}

func (Scalar) descriptor() {}

// Common scalar descriptors, named the way the source's test graphs use them.
var (
	String  = Scalar{Name: "String"}
	Integer = Scalar{Name: "Integer"}
	Float   = Scalar{Name: "Float"}
	Boolean = Scalar{Name: "Boolean"}
	Any     = Scalar{Name: "Any"}
)

// Record describes a compound value with a fixed, named set of typed fields. FieldOrder preserves
// declaration order so serialization and error messages are deterministic; FieldTypes is the
// name -> Descriptor lookup the denormalizer actually walks.
type Record struct {
	FieldOrder []string
	FieldTypes map[string]Descriptor
}

// Kind implements Descriptor.
func (Record) Kind() Kind {
	return KindRecord
}

func (Record) descriptor() {}

// NewRecord builds a Record from a name -> type map. FieldOrder is order when given; with no order
// it lists the map's keys in Go map iteration order, which is not deterministic.
func NewRecord(fields map[string]Descriptor, order ...string) Record {
	if order == nil {
		order = make([]string, 0, len(fields))
		for name := range fields {
			order = append(order, name)
		}
	}
	return Record{FieldOrder: order, FieldTypes: fields}
}

// Sequence describes a homogeneous list of Item.
type Sequence struct {
	Item Descriptor
}

// Kind implements Descriptor.
func (Sequence) Kind() Kind {
	return KindSequence
}

func (Sequence) descriptor() {}

// Optional describes a value that may be absent (nil), or else conforms to Item.
type Optional struct {
	Item Descriptor
}

// Kind implements Descriptor.
func (Optional) Kind() Kind {
	return KindOptional
}

func (Optional) descriptor() {}

// TypeRef names a graph.Node by name rather than embedding it directly, breaking the cycle between
// the type system and the schema graph (a node's link may point back at its own node, or at a node
// not yet declared when the TypeRef is written).
type TypeRef struct {
	Node string
}

// Kind implements Descriptor.
func (TypeRef) Kind() Kind {
	return KindTypeRef
}

func (TypeRef) descriptor() {}
