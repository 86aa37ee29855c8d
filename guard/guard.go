// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guard - authorisation checks shared by all handlers
//
// each check either passes or returns the corresponding fault
package guard

import (
	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
	"github.com/unityvault/unityvaultd/record"
)

// Reference - an account referenced by an instruction
type Reference interface {
	Key() account.Identity
	IsSigner() bool
	IsWritable() bool
}

// RequireSigner - the reference must carry a valid signature
func RequireSigner(ref Reference) error {
	if !ref.IsSigner() {
		return fault.MissingSignature
	}
	return nil
}

// RequireWritable - the reference must be writable
func RequireWritable(ref Reference) error {
	if !ref.IsWritable() {
		return fault.NotWritable
	}
	return nil
}

// RequireOwner - the identity must be the stored owner
func RequireOwner(owner account.Identity, identity account.Identity) error {
	if owner != identity {
		return fault.IllegalOwner
	}
	return nil
}

// RequireInitialised - the record must (or must not) be initialised
func RequireInitialised(r record.Record, expected bool) error {
	switch initialised := r.IsInitialised(); {
	case initialised && !expected:
		return fault.AlreadyInitialised
	case !initialised && expected:
		return fault.UninitialisedAccount
	}
	return nil
}

// RequireAddress - a referenced account must be the one a record points to
func RequireAddress(actual account.Identity, expected account.Identity) error {
	if actual != expected {
		return fault.WrongAccount
	}
	return nil
}
