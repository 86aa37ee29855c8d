// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - mints and token accounts held in storage
//
// a Ledger works inside one storage transaction so its movements
// commit or abort together with the records of the same instruction
package token

import (
	"encoding/binary"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/processor"
	"github.com/unityvault/unityvaultd/storage"
	"github.com/unityvault/unityvaultd/util"
)

const (
	mintSize    = 32 + 8      // authority ++ supply
	accountSize = 32 + 32 + 8 // owner ++ mint ++ amount
)

// Mint - the state of a token mint
type Mint struct {
	Authority account.Identity `json:"authority"`
	Supply    uint64           `json:"supply"`
}

// Ledger - token operations staged in a storage transaction
type Ledger struct {
	trx storage.Transaction
}

// New - a ledger over an open transaction
func New(trx storage.Transaction) *Ledger {
	return &Ledger{
		trx: trx,
	}
}

// CreateMint - register a new mint with zero supply
func (l *Ledger) CreateMint(mint account.Identity, authority account.Identity) error {
	if mint.IsZero() || authority.IsZero() {
		return fault.InvalidIdentity
	}
	if l.trx.Has(storage.Pool.Mints, mint.Bytes()) {
		return fault.AlreadyInitialised
	}
	l.putMint(mint, Mint{Authority: authority})
	return nil
}

// CreateAccount - open an empty token account for a mint
func (l *Ledger) CreateAccount(address account.Identity, owner account.Identity, mint account.Identity) error {
	if address.IsZero() || owner.IsZero() {
		return fault.InvalidIdentity
	}
	if !l.trx.Has(storage.Pool.Mints, mint.Bytes()) {
		return fault.MintNotFound
	}
	if l.trx.Has(storage.Pool.TokenAccounts, address.Bytes()) {
		return fault.AlreadyInitialised
	}
	l.putAccount(address, processor.Holding{Owner: owner, Mint: mint})
	return nil
}

// MintTo - create new tokens in an account
func (l *Ledger) MintTo(mint account.Identity, to account.Identity, authority account.Identity, amount uint64) error {
	m, err := l.getMint(mint)
	if nil != err {
		return err
	}
	if m.Authority != authority {
		return fault.IllegalOwner
	}
	holding, err := l.BalanceOf(to)
	if nil != err {
		return err
	}
	if holding.Mint != mint {
		return fault.MintMismatch
	}

	supply, err := util.SafeAdd(m.Supply, amount)
	if nil != err {
		return err
	}
	balance, err := util.SafeAdd(holding.Amount, amount)
	if nil != err {
		return err
	}

	m.Supply = supply
	holding.Amount = balance
	l.putMint(mint, m)
	l.putAccount(to, holding)
	return nil
}

// Transfer - move tokens between two accounts of the same mint
//
// authority must own the source account
func (l *Ledger) Transfer(from account.Identity, to account.Identity, authority account.Identity, amount uint64) error {
	source, err := l.BalanceOf(from)
	if nil != err {
		return err
	}
	destination, err := l.BalanceOf(to)
	if nil != err {
		return err
	}
	if source.Owner != authority {
		return fault.IllegalOwner
	}
	if source.Mint != destination.Mint {
		return fault.MintMismatch
	}
	if source.Amount < amount {
		return fault.InsufficientFunds
	}
	if from == to {
		return nil
	}

	balance, err := util.SafeAdd(destination.Amount, amount)
	if nil != err {
		return err
	}

	source.Amount -= amount
	destination.Amount = balance
	l.putAccount(from, source)
	l.putAccount(to, destination)
	return nil
}

// BalanceOf - the staged state of a token account
func (l *Ledger) BalanceOf(tokenAccount account.Identity) (processor.Holding, error) {
	return unpackAccount(l.trx.Get(storage.Pool.TokenAccounts, tokenAccount.Bytes()))
}

// SupplyOf - the staged supply of a mint
func (l *Ledger) SupplyOf(mint account.Identity) (uint64, error) {
	m, err := l.getMint(mint)
	if nil != err {
		return 0, err
	}
	return m.Supply, nil
}

func (l *Ledger) getMint(mint account.Identity) (Mint, error) {
	return unpackMint(l.trx.Get(storage.Pool.Mints, mint.Bytes()))
}

func (l *Ledger) putMint(mint account.Identity, m Mint) {
	buffer := make([]byte, mintSize)
	copy(buffer, m.Authority[:])
	binary.BigEndian.PutUint64(buffer[32:], m.Supply)
	l.trx.Put(storage.Pool.Mints, mint.Bytes(), buffer)
}

func (l *Ledger) putAccount(address account.Identity, h processor.Holding) {
	buffer := make([]byte, accountSize)
	copy(buffer, h.Owner[:])
	copy(buffer[32:], h.Mint[:])
	binary.BigEndian.PutUint64(buffer[64:], h.Amount)
	l.trx.Put(storage.Pool.TokenAccounts, address.Bytes(), buffer)
}

func unpackMint(buffer []byte) (Mint, error) {
	if nil == buffer {
		return Mint{}, fault.MintNotFound
	}
	if mintSize != len(buffer) {
		return Mint{}, fault.InvalidRecordSize
	}
	m := Mint{
		Supply: binary.BigEndian.Uint64(buffer[32:]),
	}
	copy(m.Authority[:], buffer)
	return m, nil
}

func unpackAccount(buffer []byte) (processor.Holding, error) {
	if nil == buffer {
		return processor.Holding{}, fault.TokenAccountNotFound
	}
	if accountSize != len(buffer) {
		return processor.Holding{}, fault.InvalidRecordSize
	}
	h := processor.Holding{
		Amount: binary.BigEndian.Uint64(buffer[64:]),
	}
	copy(h.Owner[:], buffer)
	copy(h.Mint[:], buffer[32:])
	return h, nil
}

// Balance - the committed state of a token account
func Balance(tokenAccount account.Identity) (processor.Holding, error) {
	return unpackAccount(storage.Pool.TokenAccounts.Get(tokenAccount.Bytes()))
}

// Supply - the committed state of a mint
func Supply(mint account.Identity) (Mint, error) {
	return unpackMint(storage.Pool.Mints.Get(mint.Bytes()))
}
