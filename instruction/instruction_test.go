// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/instruction"
)

func TestPackCreatePool(t *testing.T) {
	i := &instruction.CreatePool{
		Name:            "Harbour warehouses",
		Description:     "secured on dock property",
		AssetType:       0,
		InterestPolicy:  1,
		InterestRate:    500,
		MinLoanAmount:   100,
		MaxLoanAmount:   100000,
		LoanTerm:        2,
		CollateralRatio: 150,
	}

	packed, err := instruction.Pack(i)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// opcode, then name(4+64), description(4+256), two enums, five uint64
	assert.Equal(t, 1+68+260+2+40, len(packed), "wrong packed length")
	assert.Equal(t, byte(instruction.CreatePoolTag), packed[0], "wrong opcode byte")
	assert.Equal(t, instruction.CreatePoolTag, packed.Opcode(), "wrong opcode")

	result, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	assert.Equal(t, i, result, "round trip mismatch")
}

func TestPackNoPayload(t *testing.T) {
	packed, err := instruction.Pack(&instruction.FinalizeProposal{})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	assert.Equal(t, instruction.Packed{byte(instruction.FinalizeProposalTag)}, packed, "wrong packed bytes")

	result, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	_, ok := result.(*instruction.FinalizeProposal)
	assert.True(t, ok, "wrong instruction type")
}

func TestPackOversize(t *testing.T) {
	i := &instruction.CreateProposal{
		Title:    strings.Repeat("t", 101),
		Duration: 10,
	}
	_, err := instruction.Pack(i)
	assert.Equal(t, fault.StringTooLong, err, "oversize title accepted")
}

func TestUnpackInvalid(t *testing.T) {
	packed, err := instruction.Pack(&instruction.RequestLoan{Amount: 5000, Duration: 3600})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	items := []struct {
		packed instruction.Packed
		err    error
	}{
		{instruction.Packed{}, fault.InvalidInstruction},
		{instruction.Packed{byte(instruction.InvalidTag)}, fault.InvalidInstruction},
		{instruction.Packed{0x80}, fault.InvalidInstruction},
		{packed[:len(packed)-1], fault.InvalidInstruction},
		{append(append(instruction.Packed{}, packed...), 0x00), fault.InvalidInstruction},
		{instruction.Packed{byte(instruction.CancelLoanTag), 0x00}, fault.InvalidInstruction},
	}

	for i, item := range items {
		_, err := item.packed.Unpack()
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}

	assert.Equal(t, instruction.InvalidTag, instruction.Packed{}.Opcode(), "empty buffer has an opcode")
}

func TestUnpackBadText(t *testing.T) {
	packed, err := instruction.Pack(&instruction.CreateProposal{Title: "ok", Duration: 10})
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	// first title byte follows opcode and length prefix
	packed[1+4] = 0xff
	_, err = packed.Unpack()
	assert.Equal(t, fault.InvalidUTF8, err, "bad title accepted")
}

func TestShapes(t *testing.T) {
	for opcode := instruction.CreatePoolTag; opcode < instruction.InvalidTag; opcode += 1 {
		shape := instruction.Shape(opcode)
		if 0 == len(shape) {
			t.Errorf("%s: missing shape", opcode)
			continue
		}
		signers := 0
		for _, slot := range shape {
			if slot.Signer {
				signers += 1
			}
		}
		assert.NotZero(t, signers, "%s: no signer", opcode)
		assert.True(t, shape[0].Writable, "%s: first record not written", opcode)

		_, ok := instruction.New(opcode)
		assert.True(t, ok, "%s: no instruction", opcode)
	}

	assert.Nil(t, instruction.Shape(instruction.InvalidTag), "shape for invalid opcode")
	assert.Equal(t, 8, len(instruction.Shape(instruction.ApproveLoanTag)), "wrong approve arity")
	assert.Equal(t, "*unknown*", instruction.InvalidTag.String(), "wrong invalid name")
}

func TestPackedJSON(t *testing.T) {
	packed := instruction.Packed{0x06, 0xff, 0x00}
	buffer, err := json.Marshal(packed)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	assert.Equal(t, `"06ff00"`, string(buffer), "wrong JSON")

	var result instruction.Packed
	err = json.Unmarshal(buffer, &result)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, packed, result, "wrong decode")
}
