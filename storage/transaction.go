// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the single batched write transaction
//
// reads through a transaction see its own staged writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

// TransactionImpl - a Transaction over one Access
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - claim the transaction
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value bytes pair
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Get - read a value, nil if not found
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.get(key)
}

// Has - true if the key is present
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.has(key)
}

// InUse - true if the transaction is open
func (t *TransactionImpl) InUse() bool {
	return t.access.InUse()
}

// Commit - write all staged data
func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

// Abort - discard all staged data
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}
