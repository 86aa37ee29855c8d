// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/guard"
	"github.com/unityvault/unityvaultd/instruction"
	"github.com/unityvault/unityvaultd/record"
)

// Ref - one record referenced by an instruction
//
// an empty Data is a record that has never been written and reads
// as a zero buffer of the record's capacity
type Ref struct {
	Identity account.Identity
	Signer   bool
	Writable bool
	Data     []byte
}

// Key - identity of the referenced record
func (r *Ref) Key() account.Identity {
	return r.Identity
}

// IsSigner - true if the submission carried a valid signature for Key
func (r *Ref) IsSigner() bool {
	return r.Signer
}

// IsWritable - true if the record may be modified
func (r *Ref) IsWritable() bool {
	return r.Writable
}

// Holding - the state of a token account
type Holding struct {
	Owner  account.Identity
	Mint   account.Identity
	Amount uint64
}

// Host - the value transfer collaborator
type Host interface {
	Transfer(from account.Identity, to account.Identity, authority account.Identity, amount uint64) error
	BalanceOf(tokenAccount account.Identity) (Holding, error)
	SupplyOf(mint account.Identity) (uint64, error)
}

// a decoded record that is written back on success
type staged struct {
	ref    *Ref
	record record.Record
}

type state struct {
	shape   []instruction.Slot
	refs    []*Ref
	now     int64
	host    Host
	written []staged
}

// Process - validate, decode and execute one packed instruction
//
// records are only modified if every step succeeds, and on success
// every writable record the handler touched carries its new encoding
func Process(packed instruction.Packed, refs []*Ref, now int64, host Host) error {
	opcode := packed.Opcode()
	shape := instruction.Shape(opcode)
	if nil == shape {
		return fault.InvalidInstruction
	}
	if len(refs) != len(shape) {
		return fault.InvalidAccountData
	}

	for i, slot := range shape {
		if slot.Signer {
			if err := guard.RequireSigner(refs[i]); nil != err {
				return err
			}
		}
		if slot.Writable {
			if err := guard.RequireWritable(refs[i]); nil != err {
				return err
			}
			for j := 0; j < i; j += 1 {
				if shape[j].Writable && refs[j].Identity == refs[i].Identity {
					return fault.DuplicateAccount
				}
			}
		}
	}

	i, err := packed.Unpack()
	if nil != err {
		return err
	}

	s := &state{
		shape: shape,
		refs:  refs,
		now:   now,
		host:  host,
	}
	if err := s.dispatch(i); nil != err {
		return err
	}
	return s.commit()
}

func (s *state) dispatch(i instruction.Instruction) error {
	switch tx := i.(type) {

	case *instruction.CreatePool:
		return s.createPool(tx)
	case *instruction.Deposit:
		return s.deposit(tx)
	case *instruction.SetPoolStatus:
		return s.setPoolStatus(tx)
	case *instruction.RequestLoan:
		return s.requestLoan(tx)
	case *instruction.ApproveLoan:
		return s.approveLoan()
	case *instruction.CancelLoan:
		return s.cancelLoan()
	case *instruction.MakePayment:
		return s.makePayment(tx)
	case *instruction.LiquidateLoan:
		return s.liquidateLoan()

	case *instruction.CreateGovernance:
		return s.createGovernance(tx)
	case *instruction.CreateProposal:
		return s.createProposal(tx)
	case *instruction.CastVote:
		return s.castVote(tx)
	case *instruction.FinalizeProposal:
		return s.finalizeProposal()
	case *instruction.ExecuteProposal:
		return s.executeProposal()
	case *instruction.CancelProposal:
		return s.cancelProposal()

	default:
		return fault.InvalidInstruction
	}
}

// decode a referenced record, staging it for write back if its slot
// is written
func (s *state) load(index int, r record.Record) error {
	ref := s.refs[index]
	data := ref.Data
	if 0 == len(data) {
		data = make([]byte, record.Capacity(r))
	}
	if err := record.Unpack(data, r); nil != err {
		return err
	}
	if s.shape[index].Writable {
		s.written = append(s.written, staged{ref: ref, record: r})
	}
	return nil
}

// encode every staged record, then replace the data of all of them
func (s *state) commit() error {
	buffers := make([][]byte, len(s.written))
	for i, w := range s.written {
		buffer, err := record.Pack(w.record)
		if nil != err {
			return err
		}
		buffers[i] = buffer
	}
	for i, w := range s.written {
		w.ref.Data = buffers[i]
	}
	return nil
}

func (s *state) key(index int) account.Identity {
	return s.refs[index].Identity
}
