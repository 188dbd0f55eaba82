// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - opaque account identifiers
//
// An account is a 32 byte value.  The ledger never looks inside it;
// the RPC origin check treats it as an ed25519 public key.
package account

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/nftd/fault"
)

// miscellaneous constants
const (
	Length         = 32
	checksumLength = 4
)

// Account - fixed size opaque account identifier
type Account [Length]byte

// FromBytes - create an account from exactly Length bytes
func FromBytes(buffer []byte) (Account, error) {
	var a Account
	if Length != len(buffer) {
		return a, fault.ErrInvalidAccount
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form: base58(id ⧺ checksum)
func FromBase58(s string) (Account, error) {
	var a Account

	decoded, err := base58.Decode(s)
	if nil != err || Length+checksumLength != len(decoded) {
		return a, fault.ErrInvalidAccount
	}

	checksum := sha3.Sum256(decoded[:Length])
	if !bytes.Equal(checksum[:checksumLength], decoded[Length:]) {
		return a, fault.ErrInvalidAccount
	}

	copy(a[:], decoded[:Length])
	return a, nil
}

// Bytes - raw bytes, used as the storage key component
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - check for the all zero account
func (a Account) IsZero() bool {
	return a == Account{}
}

// String - base58 text with a 4 byte SHA3-256 checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Account) GoString() string {
	return "<account:" + a.String() + ">"
}

// MarshalText - convert account to text
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text into an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature made by this account
func (a Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
