// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/record"
	"github.com/unityvault/unityvaultd/util"
)

// Pack - opcode as Varint64 followed by the fixed width payload
func Pack(instruction Instruction) (Packed, error) {
	opcode := instruction.Opcode()
	if opcode >= InvalidTag {
		return nil, fault.InvalidInstruction
	}
	payload, err := record.PackStructure(instruction)
	if nil != err {
		return nil, err
	}
	return append(util.ToVarint64(uint64(opcode)), payload...), nil
}

// Opcode - the opcode of a packed instruction, InvalidTag if unreadable
func (packed Packed) Opcode() OpcodeType {
	opcode, n := util.ClippedVarint64(packed, 0, uint64(InvalidTag)-1)
	if 0 == n {
		return InvalidTag
	}
	return OpcodeType(opcode)
}

// Unpack - turn a packed instruction into its structure
//
// the payload must be consumed exactly, a short or over long buffer
// is an invalid instruction
//
// must cast result to correct type, e.g.
//   switch i := result.(type) {
//   case *instruction.CreatePool:
func (packed Packed) Unpack() (Instruction, error) {
	opcode, n := util.ClippedVarint64(packed, 0, uint64(InvalidTag)-1)
	if 0 == n {
		return nil, fault.InvalidInstruction
	}
	instruction, ok := New(OpcodeType(opcode))
	if !ok {
		return nil, fault.InvalidInstruction
	}

	used, err := record.UnpackStructure(packed[n:], instruction)
	if fault.TruncatedRecord == err {
		return nil, fault.InvalidInstruction
	}
	if nil != err {
		return nil, err
	}
	if n+used != len(packed) {
		return nil, fault.InvalidInstruction
	}
	return instruction, nil
}
