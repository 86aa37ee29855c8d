// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"reflect"
	"unicode/utf8"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
)

// Unpack - fill a record from a packed buffer
//
// an all zero buffer (NullTag) yields the zero record with
// Initialised == false, the caller decides whether that is allowed
//
// a list with no elements decodes as nil, so an empty non-nil list
// packs to the same bytes as nil and comes back as nil
func Unpack(buffer []byte, r Record) error {
	if len(buffer) != Capacity(r) {
		return fault.InvalidRecordSize
	}

	switch tag := TagType(buffer[0]); tag {
	case r.Tag():
	case NullTag:
		for _, b := range buffer {
			if 0 != b {
				return fault.WrongRecordType
			}
		}
	default:
		return fault.WrongRecordType
	}

	return unpackFields(buffer[1:], r.Fields())
}

// UnpackStructure - fill an untagged structure, the buffer must be
// at least as long as the structure; returns the bytes consumed
func UnpackStructure(buffer []byte, s Structure) (int, error) {
	fields := s.Fields()
	n := schemaWidth(fields)
	if len(buffer) < n {
		return 0, fault.TruncatedRecord
	}
	if err := unpackFields(buffer[:n], fields); nil != err {
		return 0, err
	}
	return n, nil
}

// read fields in order, each one occupying its full width
func unpackFields(buffer []byte, fields []Field) error {
	n := 0
	for _, f := range fields {
		w := f.width()
		if n+w > len(buffer) {
			return fault.TruncatedRecord
		}
		if err := unpackField(buffer[n:n+w], f); nil != err {
			return err
		}
		n += w
	}
	return nil
}

func unpackField(buffer []byte, f Field) error {
	switch f.Kind {

	case Bool:
		switch buffer[0] {
		case 0:
			*f.Value.(*bool) = false
		case 1:
			*f.Value.(*bool) = true
		default:
			return fault.InvalidBoolean
		}

	case Uint8:
		*f.Value.(*uint8) = buffer[0]

	case Enum:
		if int(buffer[0]) >= f.Maximum {
			return fault.InvalidEnumeration
		}
		reflect.ValueOf(f.Value).Elem().SetUint(uint64(buffer[0]))

	case Uint64:
		*f.Value.(*uint64) = binary.LittleEndian.Uint64(buffer)

	case Int64:
		*f.Value.(*int64) = int64(binary.LittleEndian.Uint64(buffer))

	case Account:
		id := f.Value.(*account.Identity)
		copy(id[:], buffer)

	case String:
		length := binary.LittleEndian.Uint32(buffer)
		if uint64(length) > uint64(f.Maximum) {
			return fault.StringLengthOutOfRange
		}
		text := buffer[lengthBytes : lengthBytes+int(length)]
		if !utf8.Valid(text) {
			return fault.InvalidUTF8
		}
		*f.Value.(*string) = string(text)

	case List:
		count := binary.LittleEndian.Uint32(buffer)
		if uint64(count) > uint64(f.Maximum) {
			return fault.ListLengthOutOfRange
		}
		v := reflect.ValueOf(f.Value).Elem()
		if 0 == count {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		list := reflect.MakeSlice(v.Type(), int(count), int(count))
		n := lengthBytes
		w := elementWidth(f.Value)
		for i := 0; i < int(count); i += 1 {
			element := list.Index(i).Addr().Interface().(Structure)
			if err := unpackFields(buffer[n:n+w], element.Fields()); nil != err {
				return err
			}
			n += w
		}
		v.Set(list)

	default:
		return fault.UnknownRecordType
	}
	return nil
}
