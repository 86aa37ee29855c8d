// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/storage"
)

// test database file
const (
	databaseName     = "test"
	databaseFileName = databaseName + ".leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise allowed")
}

func TestTransactionInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	assert.True(t, trx.InUse(), "transaction not in use")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "second transaction allowed")

	trx.Abort()
	assert.False(t, trx.InUse(), "aborted transaction still in use")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction not released by abort")
	trx.Abort()
}

func TestCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("key-one")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}

	trx.Put(storage.Pool.Records, key, []byte("value"))

	assert.Equal(t, []byte("value"), trx.Get(storage.Pool.Records, key), "staged value not visible")
	assert.True(t, trx.Has(storage.Pool.Records, key), "staged key not found")
	assert.Nil(t, storage.Pool.Records.Get(key), "staged value visible outside transaction")
	assert.Nil(t, trx.Get(storage.Pool.TokenAccounts, key), "pools not separated")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, trx.InUse(), "committed transaction still in use")

	assert.Equal(t, []byte("value"), storage.Pool.Records.Get(key), "committed value not visible")
	assert.Equal(t, 1, storage.Pool.Records.Count(), "wrong record count")
}

func TestAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("key-two")

	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	trx.Put(storage.Pool.Records, key, []byte("first"))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}

	trx, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	trx.Put(storage.Pool.Records, key, []byte("second"))
	trx.Put(storage.Pool.Instructions, key, []byte("log"))
	assert.Equal(t, []byte("second"), trx.Get(storage.Pool.Records, key), "staged overwrite not visible")
	trx.Abort()

	assert.Equal(t, []byte("first"), storage.Pool.Records.Get(key), "abort did not discard overwrite")
	assert.Nil(t, storage.Pool.Instructions.Get(key), "abort did not discard write")
}

func TestGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	key := []byte("key-three")

	_, found := storage.Pool.Instructions.GetN(key)
	assert.False(t, found, "absent key found")

	// timestamp prefix followed by the logged data
	entry := make([]byte, 8, 11)
	binary.BigEndian.PutUint64(entry, 1700000000)
	entry = append(entry, 0x01, 0x02, 0x03)

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.Instructions, key, entry)

	_, found = storage.Pool.Instructions.GetN(key)
	assert.False(t, found, "staged entry visible outside transaction")

	_ = trx.Commit()

	n, found := storage.Pool.Instructions.GetN(key)
	assert.True(t, found, "committed entry not found")
	assert.Equal(t, uint64(1700000000), n, "wrong timestamp")
}
