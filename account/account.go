// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/unityvault/unityvaultd/fault"
)

// IdentityLength - number of bytes in an identity
const IdentityLength = 32

// Identity - the address of any ledger account
//
// either an ed25519 public key (a signer) or a derived address
// (a record, a token account, a program)
type Identity [IdentityLength]byte

// Zero - the identity that is never a valid owner
var Zero Identity

// IdentityFromBytes - copy a 32 byte slice into an identity
func IdentityFromBytes(b []byte) (Identity, error) {
	var id Identity
	if IdentityLength != len(b) {
		return id, fault.InvalidIdentity
	}
	copy(id[:], b)
	return id, nil
}

// IdentityFromBase58 - decode the text form of an identity
func IdentityFromBase58(s string) (Identity, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return Zero, fault.InvalidIdentity
	}
	return IdentityFromBytes(b)
}

// IsZero - true if all bytes are zero
func (id Identity) IsZero() bool {
	return id == Zero
}

// Bytes - a copy of the identity as a slice
func (id Identity) Bytes() []byte {
	b := make([]byte, IdentityLength)
	copy(b, id[:])
	return b
}

// String - base58 text for the fmt package (for %s)
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// GoString - for %#v
func (id Identity) GoString() string {
	return "<identity:" + base58.Encode(id[:]) + ">"
}

// MarshalText - convert identity to base58 text
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text to an identity
func (id *Identity) UnmarshalText(s []byte) error {
	a, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}

// Compare - byte order comparison, used to sort identities
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id[:], other[:])
}

// CheckSignature - verify an ed25519 signature made by this identity
func (id Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(id[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
