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

// Capacity - the exact size of any packed record of this type
func Capacity(r Record) int {
	return 1 + schemaWidth(r.Fields())
}

// Pack - serialise a record into a new buffer of Capacity bytes
//
// a string or list larger than its declared maximum is an error,
// nothing is ever truncated
func Pack(r Record) ([]byte, error) {
	buffer := make([]byte, Capacity(r))
	buffer[0] = byte(r.Tag())
	if err := packFields(buffer[1:], r.Fields()); nil != err {
		return nil, err
	}
	return buffer, nil
}

// PackStructure - serialise an untagged structure
//
// used for instruction payloads
func PackStructure(s Structure) ([]byte, error) {
	fields := s.Fields()
	buffer := make([]byte, schemaWidth(fields))
	if err := packFields(buffer, fields); nil != err {
		return nil, err
	}
	return buffer, nil
}

// write fields in order, each one occupying its full width
func packFields(buffer []byte, fields []Field) error {
	n := 0
	for _, f := range fields {
		w := f.width()
		if err := packField(buffer[n:n+w], f); nil != err {
			return err
		}
		n += w
	}
	return nil
}

func packField(buffer []byte, f Field) error {
	switch f.Kind {

	case Bool:
		if *f.Value.(*bool) {
			buffer[0] = 1
		}

	case Uint8:
		buffer[0] = *f.Value.(*uint8)

	case Enum:
		v := reflect.ValueOf(f.Value).Elem().Uint()
		if v >= uint64(f.Maximum) {
			return fault.InvalidEnumeration
		}
		buffer[0] = byte(v)

	case Uint64:
		binary.LittleEndian.PutUint64(buffer, *f.Value.(*uint64))

	case Int64:
		binary.LittleEndian.PutUint64(buffer, uint64(*f.Value.(*int64)))

	case Account:
		id := f.Value.(*account.Identity)
		copy(buffer, id[:])

	case String:
		s := *f.Value.(*string)
		if len(s) > f.Maximum {
			return fault.StringTooLong
		}
		if !utf8.ValidString(s) {
			return fault.InvalidUTF8
		}
		binary.LittleEndian.PutUint32(buffer, uint32(len(s)))
		copy(buffer[lengthBytes:], s)

	case List:
		v := reflect.ValueOf(f.Value).Elem()
		count := v.Len()
		if count > f.Maximum {
			return fault.ListTooLong
		}
		binary.LittleEndian.PutUint32(buffer, uint32(count))
		n := lengthBytes
		w := elementWidth(f.Value)
		for i := 0; i < count; i += 1 {
			element := v.Index(i).Addr().Interface().(Structure)
			if err := packFields(buffer[n:n+w], element.Fields()); nil != err {
				return err
			}
			n += w
		}

	default:
		return fault.UnknownRecordType
	}
	return nil
}
