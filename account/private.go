// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"io"

	"golang.org/x/crypto/ed25519"

	"github.com/unityvault/unityvaultd/fault"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a key from a random source
//
// rand == nil uses crypto/rand
func NewPrivateKey(rand io.Reader) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidArgument
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromHex - decode a hex encoded 32 byte seed or 64 byte key
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	switch len(b) {
	case ed25519.SeedSize:
		return PrivateKeyFromSeed(b)
	case ed25519.PrivateKeySize:
		return &PrivateKey{key: ed25519.PrivateKey(b)}, nil
	default:
		return nil, fault.InvalidArgument
	}
}

// Identity - the public identity of this key
func (private *PrivateKey) Identity() Identity {
	var id Identity
	copy(id[:], private.key.Public().(ed25519.PublicKey))
	return id
}

// Sign - sign a message
func (private *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(private.key, message)
}

// Seed - hex of the 32 byte seed, for writing key files
func (private *PrivateKey) Seed() string {
	return hex.EncodeToString(private.key.Seed())
}
