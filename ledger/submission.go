// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/instruction"
	"github.com/unityvault/unityvaultd/merkle"
	"github.com/unityvault/unityvaultd/util"
)

// AccountMeta - one record position of a submission
type AccountMeta struct {
	Key      account.Identity `json:"key"`
	Writable bool             `json:"writable"`
}

// SignatureItem - a signature over the submission message
type SignatureItem struct {
	Signer    account.Identity  `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Submission - a signed instruction with its record list
//
// the nonce only distinguishes otherwise identical submissions
type Submission struct {
	Nonce       uint64             `json:"nonce"`
	Instruction instruction.Packed `json:"instruction"`
	Accounts    []AccountMeta      `json:"accounts"`
	Signatures  []SignatureItem    `json:"signatures"`
}

// Message - the bytes every signer signs
//
//   nonce ++ length ++ instruction ++ count ++ (key ++ writable)*
//
// numbers are Varint64
func (s *Submission) Message() []byte {
	message := util.ToVarint64(s.Nonce)
	message = append(message, util.ToVarint64(uint64(len(s.Instruction)))...)
	message = append(message, s.Instruction...)
	message = append(message, util.ToVarint64(uint64(len(s.Accounts)))...)
	for _, a := range s.Accounts {
		message = append(message, a.Key[:]...)
		if a.Writable {
			message = append(message, 1)
		} else {
			message = append(message, 0)
		}
	}
	return message
}

// Id - digest of the message, unique per executed submission
func (s *Submission) Id() merkle.Digest {
	return merkle.NewDigest(s.Message())
}

// Sign - append a signature by each key
func (s *Submission) Sign(keys ...*account.PrivateKey) {
	message := s.Message()
	for _, key := range keys {
		s.Signatures = append(s.Signatures, SignatureItem{
			Signer:    key.Identity(),
			Signature: key.Sign(message),
		})
	}
}

// the set of identities with a valid signature
func (s *Submission) signers() (map[account.Identity]bool, error) {
	message := s.Message()
	signers := make(map[account.Identity]bool, len(s.Signatures))
	for _, item := range s.Signatures {
		if err := item.Signer.CheckSignature(message, item.Signature); nil != err {
			return nil, err
		}
		signers[item.Signer] = true
	}
	return signers, nil
}
