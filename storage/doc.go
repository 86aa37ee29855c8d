// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single Transaction that stages them in a
// leveldb batch with a read-your-writes cache; Commit writes the batch
// atomically and Abort discards it.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account identity
// 4. id           = instruction digest as 32 byte SHA3-256(data)
// 5. amount       = big endian uint64 (8 bytes)
//
// Records:
//
//   R ++ address               - ledger record
//                                data: packed record of its fixed capacity
//
// Token accounts:
//
//   A ++ address               - token account
//                                data: owner ++ mint ++ amount
//
// Mints:
//
//   M ++ address               - token mint
//                                data: authority ++ supply
//
// Instructions:
//
//   I ++ id                    - executed instruction log
//                                data: time ++ packed instruction
package storage
