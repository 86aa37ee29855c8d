// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS client interface
//
// services:
//   Ledger.Submit  - execute a signed submission
//   Ledger.Record  - fetch and decode a committed record
//   Ledger.Status  - check whether a submission or token request ran
//   Token.Apply    - signed mint and token account administration
//   Token.Balance  - committed token account state
//   Token.Supply   - committed mint state
//   Node.Info      - version, uptime, connection and execution counts
package rpc
