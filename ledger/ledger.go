// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - run submissions against storage
//
// one submission at a time: verify signatures, load the referenced
// records, run the processor and then commit records, token
// movements and the instruction log together, or abort everything
package ledger

import (
	"bytes"
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/counter"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/merkle"
	"github.com/unityvault/unityvaultd/processor"
	"github.com/unityvault/unityvaultd/storage"
	"github.com/unityvault/unityvaultd/token"
)

// Ledger - serialises execution
type Ledger struct {
	sync.Mutex
	log      *logger.L
	clock    func() time.Time
	executed counter.Counter
	rejected counter.Counter
}

// New - create a ledger, nil clock means time.Now
func New(log *logger.L, clock func() time.Time) *Ledger {
	if nil == clock {
		clock = time.Now
	}
	return &Ledger{
		log:   log,
		clock: clock,
	}
}

// Counts - submissions and token requests committed and rejected
// since start
func (l *Ledger) Counts() (uint64, uint64) {
	return l.executed.Uint64(), l.rejected.Uint64()
}

// Execute - run one submission atomically
func (l *Ledger) Execute(s *Submission) (merkle.Digest, error) {
	l.Lock()
	defer l.Unlock()

	id := s.Id()
	opcode := s.Instruction.Opcode()

	signers, err := s.signers()
	if nil != err {
		l.log.Warnf("id: %v  opcode: %s  signature error: %s", id, opcode, err)
		l.rejected.Increment()
		return id, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return id, err
	}

	now := l.clock().Unix()
	err = l.execute(trx, s, id, signers, now)
	if nil != err {
		trx.Abort()
		l.log.Infof("id: %v  opcode: %s  rejected: %s", id, opcode, err)
		l.rejected.Increment()
		return id, err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("id: %v  commit error: %s", id, err)
		return id, err
	}
	l.executed.Increment()
	l.log.Infof("id: %v  opcode: %s  executed at: %d", id, opcode, now)
	return id, nil
}

func (l *Ledger) execute(trx storage.Transaction, s *Submission, id merkle.Digest, signers map[account.Identity]bool, now int64) error {
	if trx.Has(storage.Pool.Instructions, id[:]) {
		return fault.DuplicateInstruction
	}

	refs := make([]*processor.Ref, len(s.Accounts))
	original := make([][]byte, len(s.Accounts))
	for i, a := range s.Accounts {
		data := trx.Get(storage.Pool.Records, a.Key.Bytes())
		original[i] = data
		refs[i] = &processor.Ref{
			Identity: a.Key,
			Signer:   signers[a.Key],
			Writable: a.Writable,
			Data:     append([]byte(nil), data...),
		}
		l.log.Debugf("id: %v  record[%d]: %v  size: %d", id, i, a.Key, len(data))
	}

	err := processor.Process(s.Instruction, refs, now, token.New(trx))
	if nil != err {
		return err
	}

	for i, ref := range refs {
		if !ref.Writable || bytes.Equal(original[i], ref.Data) {
			continue
		}
		trx.Put(storage.Pool.Records, ref.Identity.Bytes(), ref.Data)
	}

	logEntry := make([]byte, 8, 8+len(s.Instruction))
	binary.BigEndian.PutUint64(logEntry, uint64(now))
	logEntry = append(logEntry, s.Instruction...)
	trx.Put(storage.Pool.Instructions, id[:], logEntry)
	return nil
}
