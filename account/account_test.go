// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unityvault/unityvaultd/account"
	"github.com/unityvault/unityvaultd/fault"
)

var testSeed = bytes.Repeat([]byte{0x5a}, 32)

func TestBase58RoundTrip(t *testing.T) {
	key, err := account.PrivateKeyFromSeed(testSeed)
	if nil != err {
		t.Fatalf("private key from seed error: %s", err)
	}
	id := key.Identity()

	text := id.String()
	decoded, err := account.IdentityFromBase58(text)
	assert.Nil(t, err, "wrong decode error")
	assert.Equal(t, id, decoded, "wrong identity")
	assert.False(t, id.IsZero(), "identity should not be zero")
	assert.True(t, account.Zero.IsZero(), "zero should be zero")
}

func TestInvalidBase58(t *testing.T) {
	_, err := account.IdentityFromBase58("0OIl")
	assert.Equal(t, fault.InvalidIdentity, err, "wrong error for bad alphabet")

	_, err = account.IdentityFromBase58("3mJr7AoUXx2Wqd")
	assert.Equal(t, fault.InvalidIdentity, err, "wrong error for short identity")

	_, err = account.IdentityFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidIdentity, err, "wrong error for short bytes")
}

func TestJSON(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(testSeed)

	type item struct {
		Owner account.Identity  `json:"owner"`
		Sig   account.Signature `json:"sig"`
	}
	in := item{
		Owner: key.Identity(),
		Sig:   key.Sign([]byte("message")),
	}

	b, err := json.Marshal(in)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var out item
	err = json.Unmarshal(b, &out)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	assert.Equal(t, in.Owner, out.Owner, "wrong owner")
	assert.Equal(t, in.Sig, out.Sig, "wrong signature")
}

func TestSignature(t *testing.T) {
	key, err := account.NewPrivateKey(nil)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	message := []byte("approve loan")
	signature := key.Sign(message)

	assert.Nil(t, key.Identity().CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, key.Identity().CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, key.Identity().CheckSignature(message, signature[:10]), "short signature accepted")

	other, _ := account.PrivateKeyFromSeed(testSeed)
	assert.Equal(t, fault.InvalidSignature, other.Identity().CheckSignature(message, signature), "wrong signer accepted")
}

func TestPrivateKeyFromHex(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(testSeed)

	again, err := account.PrivateKeyFromHex(key.Seed())
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, key.Identity(), again.Identity(), "wrong identity from seed hex")

	_, err = account.PrivateKeyFromHex("abcd")
	assert.Equal(t, fault.InvalidArgument, err, "wrong error for short key")
}
