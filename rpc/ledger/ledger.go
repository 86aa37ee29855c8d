// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/ledger"
	"github.com/unityvault/unityvaultd/merkle"
	"github.com/unityvault/unityvaultd/record"
	"github.com/unityvault/unityvaultd/rpc/ratelimit"
	"github.com/unityvault/unityvaultd/storage"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Executor - runs a signed submission
type Executor interface {
	Execute(*ledger.Submission) (merkle.Digest, error)
}

// Ledger - type for RPC calls
type Ledger struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Records      storage.Handle
	Instructions storage.Handle
	executor     Executor
}

// New - create the ledger rpc service
func New(log *logger.L, records storage.Handle, instructions storage.Handle, executor Executor) *Ledger {
	return &Ledger{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Records:      records,
		Instructions: instructions,
		executor:     executor,
	}
}

// ---

// SubmitReply - result of a submission
type SubmitReply struct {
	Id merkle.Digest `json:"id"`
}

// Submit - execute one signed instruction
func (l *Ledger) Submit(arguments *ledger.Submission, reply *SubmitReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == arguments || 0 == len(arguments.Instruction) {
		return fault.InvalidInstruction
	}
	if 0 == len(arguments.Signatures) {
		return fault.MissingSignature
	}

	l.Log.Debugf("submit: opcode: %s  accounts: %d", arguments.Instruction.Opcode(), len(arguments.Accounts))

	id, err := l.executor.Execute(arguments)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// ---

// RecordArguments - the record to fetch
type RecordArguments struct {
	Key account.Identity `json:"key"`
}

// RecordReply - a decoded record together with its raw bytes
type RecordReply struct {
	Key    account.Identity `json:"key"`
	Type   string           `json:"type"`
	Record interface{}      `json:"record"`
	Data   string           `json:"data"`
}

// Record - fetch and decode a committed record
func (l *Ledger) Record(arguments *RecordArguments, reply *RecordReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == l.Records {
		return fault.DatabaseIsNotSet
	}

	data := l.Records.Get(arguments.Key.Bytes())
	if nil == data {
		return fault.RecordNotFound
	}

	tag, err := record.Type(data)
	if nil != err {
		return err
	}
	r, err := record.New(tag)
	if nil != err {
		return err
	}
	if err := record.Unpack(data, r); nil != err {
		l.Log.Errorf("record: %v  unpack error: %s", arguments.Key, err)
		return err
	}

	reply.Key = arguments.Key
	reply.Type = tag.String()
	reply.Record = r
	reply.Data = hex.EncodeToString(data)
	return nil
}

// ---

// StatusArguments - the submission or token request to look up
type StatusArguments struct {
	Id merkle.Digest `json:"id"`
}

// StatusReply - whether an id was executed and when
type StatusReply struct {
	Executed  bool  `json:"executed"`
	Timestamp int64 `json:"timestamp"`
}

// Status - check the instruction log
func (l *Ledger) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	if nil == l.Instructions {
		return fault.DatabaseIsNotSet
	}

	// log entries begin with the execution timestamp
	timestamp, found := l.Instructions.GetN(arguments.Id[:])
	reply.Executed = found
	if found {
		reply.Timestamp = int64(timestamp)
	}
	return nil
}
