// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package origin - authenticate the caller of a state changing request
//
// the caller's account is its ed25519 public key; a request carries a
// signature over the method name, a timestamp and the packed
// arguments.  Requests whose timestamp is too far from the server
// clock are rejected.
package origin

import (
	"crypto/ed25519"
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

// MaximumSkew - allowed distance between request and server clocks
const MaximumSkew = 5 * time.Minute

// Request - signed part of every state changing RPC argument
type Request struct {
	Caller    account.Account   `json:"caller"`
	Timestamp int64             `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// Field - one packed argument
type Field []byte

// Account - field form of an account
func Account(a account.Account) Field {
	return a.Bytes()
}

// Uint64 - field form of an id
func Uint64(n uint64) Field {
	return binary.BigEndian.AppendUint64(nil, n)
}

// Bool - field form of a flag
func Bool(b bool) Field {
	if b {
		return Field{1}
	}
	return Field{0}
}

// Message - the bytes that are signed
//
// every field is length prefixed so no two argument lists pack alike
func Message(method string, timestamp int64, fields ...Field) []byte {
	message := make([]byte, 0, 64)
	message = binary.AppendUvarint(message, uint64(len(method)))
	message = append(message, method...)
	message = binary.BigEndian.AppendUint64(message, uint64(timestamp))
	for _, f := range fields {
		message = binary.AppendUvarint(message, uint64(len(f)))
		message = append(message, f...)
	}
	return message
}

// Sign - build a request for method signed by privateKey
func Sign(privateKey ed25519.PrivateKey, method string, timestamp time.Time, fields ...Field) (Request, error) {
	caller, err := account.FromBytes(privateKey.Public().(ed25519.PublicKey))
	if nil != err {
		return Request{}, err
	}
	ts := timestamp.Unix()
	return Request{
		Caller:    caller,
		Timestamp: ts,
		Signature: ed25519.Sign(privateKey, Message(method, ts, fields...)),
	}, nil
}

// Verify - check the request signature and timestamp, returning the
// authenticated caller
func (r Request) Verify(method string, now time.Time, fields ...Field) (account.Account, error) {
	if r.Caller.IsZero() {
		return r.Caller, fault.ErrInvalidAccount
	}

	skew := now.Sub(time.Unix(r.Timestamp, 0))
	if skew > MaximumSkew || skew < -MaximumSkew {
		return r.Caller, fault.ErrInvalidTimestamp
	}

	err := r.Caller.CheckSignature(Message(method, r.Timestamp, fields...), r.Signature)
	if nil != err {
		return r.Caller, err
	}
	return r.Caller, nil
}
