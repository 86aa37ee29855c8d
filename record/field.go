// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"reflect"

	"github.com/unityvault/unityvaultd/account"
)

// Kind - the semantic type of a field
type Kind int

// field kinds
const (
	Bool    Kind = iota // 1 byte, 0x00 or 0x01
	Uint8               // 1 byte
	Enum                // 1 byte, value < Maximum
	Uint64              // 8 bytes little endian
	Int64               // 8 bytes little endian, two's complement
	Account             // 32 bytes
	String              // 4 byte little endian length ++ Maximum bytes
	List                // 4 byte little endian count ++ Maximum elements
)

// bytes used by a string length or list count
const lengthBytes = 4

// Field - one entry in a record schema
//
// Value is a pointer to the member of the record being described:
//   Bool: *bool, Uint8: *uint8, Uint64: *uint64, Int64: *int64,
//   Account: *account.Identity, String: *string,
//   Enum: pointer to any uint8 based type,
//   List: pointer to a slice of a struct whose pointer is a Structure
type Field struct {
	Name    string
	Kind    Kind
	Maximum int
	Value   interface{}
}

// Structure - anything that describes itself as an ordered list of fields
type Structure interface {
	Fields() []Field
}

// BoolField - a boolean member
func BoolField(name string, p *bool) Field {
	return Field{Name: name, Kind: Bool, Value: p}
}

// Uint8Field - a byte sized member
func Uint8Field(name string, p *uint8) Field {
	return Field{Name: name, Kind: Uint8, Value: p}
}

// EnumField - a uint8 based enumeration with values 0..limit-1
func EnumField(name string, p interface{}, limit int) Field {
	return Field{Name: name, Kind: Enum, Maximum: limit, Value: p}
}

// Uint64Field - an unsigned amount or counter
func Uint64Field(name string, p *uint64) Field {
	return Field{Name: name, Kind: Uint64, Value: p}
}

// Int64Field - a timestamp or a duration in seconds
func Int64Field(name string, p *int64) Field {
	return Field{Name: name, Kind: Int64, Value: p}
}

// AccountField - an identity
func AccountField(name string, p *account.Identity) Field {
	return Field{Name: name, Kind: Account, Value: p}
}

// StringField - UTF-8 text of at most maximum bytes
func StringField(name string, p *string, maximum int) Field {
	return Field{Name: name, Kind: String, Maximum: maximum, Value: p}
}

// ListField - a slice of at most maximum structures
func ListField(name string, p interface{}, maximum int) Field {
	return Field{Name: name, Kind: List, Maximum: maximum, Value: p}
}

// the number of bytes this field always occupies
func (f Field) width() int {
	switch f.Kind {
	case Bool, Uint8, Enum:
		return 1
	case Uint64, Int64:
		return 8
	case Account:
		return account.IdentityLength
	case String:
		return lengthBytes + f.Maximum
	case List:
		return lengthBytes + f.Maximum*elementWidth(f.Value)
	default:
		return 0
	}
}

// total width of a schema
func schemaWidth(fields []Field) int {
	n := 0
	for _, f := range fields {
		n += f.width()
	}
	return n
}

// fixed width of one list element
func elementWidth(slicePointer interface{}) int {
	return schemaWidth(newElement(reflect.TypeOf(slicePointer).Elem().Elem()).Fields())
}

// a fresh element of the slice element type
func newElement(t reflect.Type) Structure {
	return reflect.New(t).Interface().(Structure)
}
