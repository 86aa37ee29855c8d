// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/merkle"
	"github.com/unityvault/unityvaultd/storage"
	"github.com/unityvault/unityvaultd/token"
	"github.com/unityvault/unityvaultd/util"
)

// TokenOperation - administrative token actions
type TokenOperation uint8

// token operations
const (
	CreateMint    TokenOperation = iota // Signer becomes the mint authority
	CreateAccount                       // any Signer may open an account for Owner
	MintTo                              // Signer must be the mint authority
)

// domain separates token request digests from submission digests
const tokenDomain = "token"

// TokenRequest - a signed token administration request
type TokenRequest struct {
	Nonce     uint64            `json:"nonce"`
	Operation TokenOperation    `json:"operation"`
	Mint      account.Identity  `json:"mint"`
	Account   account.Identity  `json:"account"`
	Owner     account.Identity  `json:"owner"`
	Amount    uint64            `json:"amount"`
	Signer    account.Identity  `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes the signer signs
//
//   nonce ++ operation ++ mint ++ account ++ owner ++ amount ++ signer
func (r *TokenRequest) Message() []byte {
	message := util.ToVarint64(r.Nonce)
	message = append(message, byte(r.Operation))
	message = append(message, r.Mint[:]...)
	message = append(message, r.Account[:]...)
	message = append(message, r.Owner[:]...)
	message = append(message, util.ToVarint64(r.Amount)...)
	message = append(message, r.Signer[:]...)
	return message
}

// Id - digest of the message
func (r *TokenRequest) Id() merkle.Digest {
	return merkle.Derive(tokenDomain, r.Message())
}

// Sign - set the signer and signature
func (r *TokenRequest) Sign(key *account.PrivateKey) {
	r.Signer = key.Identity()
	r.Signature = key.Sign(r.Message())
}

// Token - apply one token request atomically
func (l *Ledger) Token(r *TokenRequest) (merkle.Digest, error) {
	l.Lock()
	defer l.Unlock()

	id := r.Id()
	if err := r.Signer.CheckSignature(r.Message(), r.Signature); nil != err {
		l.log.Warnf("token id: %v  signature error: %s", id, err)
		l.rejected.Increment()
		return id, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return id, err
	}

	now := l.clock().Unix()
	err = applyToken(trx, r, id, now)
	if nil != err {
		trx.Abort()
		l.log.Infof("token id: %v  operation: %d  rejected: %s", id, r.Operation, err)
		l.rejected.Increment()
		return id, err
	}

	err = trx.Commit()
	if nil != err {
		l.log.Criticalf("token id: %v  commit error: %s", id, err)
		return id, err
	}
	l.executed.Increment()
	l.log.Infof("token id: %v  operation: %d  amount: %d", id, r.Operation, r.Amount)
	return id, nil
}

func applyToken(trx storage.Transaction, r *TokenRequest, id merkle.Digest, now int64) error {
	if trx.Has(storage.Pool.Instructions, id[:]) {
		return fault.DuplicateInstruction
	}

	t := token.New(trx)
	var err error
	switch r.Operation {
	case CreateMint:
		err = t.CreateMint(r.Mint, r.Signer)
	case CreateAccount:
		err = t.CreateAccount(r.Account, r.Owner, r.Mint)
	case MintTo:
		err = t.MintTo(r.Mint, r.Account, r.Signer, r.Amount)
	default:
		err = fault.InvalidArgument
	}
	if nil != err {
		return err
	}

	logEntry := make([]byte, 8, 8+1)
	binary.BigEndian.PutUint64(logEntry, uint64(now))
	logEntry = append(logEntry, byte(r.Operation))
	trx.Put(storage.Pool.Instructions, id[:], logEntry)
	return nil
}
