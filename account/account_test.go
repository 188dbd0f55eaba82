// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

type ownerHolder struct {
	Owner account.Account `json:"owner"`
}

func TestTextRoundTrip(t *testing.T) {
	var a account.Account
	for i := range a {
		a[i] = byte(i * 7)
	}

	s := a.String()
	b, err := account.FromBase58(s)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, a, b, "decoded account differs")

	buffer, err := json.Marshal(ownerHolder{Owner: a})
	assert.Nil(t, err, "json marshal error")
	assert.Equal(t, `{"owner":"`+s+`"}`, string(buffer), "wrong json")

	var reply ownerHolder
	err = json.Unmarshal(buffer, &reply)
	assert.Nil(t, err, "json unmarshal error")
	assert.Equal(t, a, reply.Owner, "wrong account after unmarshal")
}

func TestChecksumMismatch(t *testing.T) {
	var a account.Account
	a[0] = 1
	s := []byte(a.String())

	// change a single character
	if '2' == s[3] {
		s[3] = '3'
	} else {
		s[3] = '2'
	}

	_, err := account.FromBase58(string(s))
	assert.Equal(t, fault.ErrInvalidAccount, err, "corrupt text accepted")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidAccount, err, "invalid base58 accepted")
}

func TestFromBytes(t *testing.T) {
	_, err := account.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAccount, err, "short account accepted")

	a, err := account.FromBytes(make([]byte, account.Length))
	assert.Nil(t, err, "valid length rejected")
	assert.True(t, a.IsZero(), "zero account not detected")
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	assert.Nil(t, err, "key generation failed")

	a, err := account.FromBytes(publicKey)
	assert.Nil(t, err, "account from public key")

	message := []byte("Token.Transfer")
	signature := account.Signature(ed25519.Sign(privateKey, message))

	assert.Nil(t, a.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, a.CheckSignature(message, signature[:10]), "short signature accepted")
}
