// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - ledger events and their persistent log
package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

// Kind - type of event
type Kind uint8

// event kinds
const (
	Transfer Kind = iota + 1
	Approval
	ApprovalForAll
)

// String - name of kind
func (kind Kind) String() string {
	switch kind {
	case Transfer:
		return "Transfer"
	case Approval:
		return "Approval"
	case ApprovalForAll:
		return "ApprovalForAll"
	default:
		return "Unknown"
	}
}

// MarshalText - kind name for JSON
func (kind Kind) MarshalText() ([]byte, error) {
	return []byte(kind.String()), nil
}

// UnmarshalText - kind from its name
func (kind *Kind) UnmarshalText(s []byte) error {
	for k := Transfer; k <= ApprovalForAll; k += 1 {
		if k.String() == string(s) {
			*kind = k
			return nil
		}
	}
	return fault.ErrInvalidEventPack
}

// Event - one ledger event
//
//	Transfer:       From (nil on issue), To (nil on burn), TokenId
//	Approval:       Owner, Delegate, TokenId
//	ApprovalForAll: Owner, Operator, Approved
type Event struct {
	Sequence uint64           `json:"sequence,string"`
	Kind     Kind             `json:"kind"`
	From     *account.Account `json:"from,omitempty"`
	To       *account.Account `json:"to,omitempty"`
	Owner    *account.Account `json:"owner,omitempty"`
	Delegate *account.Account `json:"delegate,omitempty"`
	Operator *account.Account `json:"operator,omitempty"`
	TokenId  uint64           `json:"tokenId,string"`
	Approved bool             `json:"approved"`
}

// NewTransfer - token moved, issued (from nil) or burned (to nil)
func NewTransfer(from *account.Account, to *account.Account, tokenId uint64) Event {
	return Event{
		Kind:    Transfer,
		From:    from,
		To:      to,
		TokenId: tokenId,
	}
}

// NewApproval - delegate may transfer the token
func NewApproval(owner account.Account, delegate account.Account, tokenId uint64) Event {
	return Event{
		Kind:     Approval,
		Owner:    &owner,
		Delegate: &delegate,
		TokenId:  tokenId,
	}
}

// NewApprovalForAll - operator flag changed
func NewApprovalForAll(owner account.Account, operator account.Account, approved bool) Event {
	return Event{
		Kind:     ApprovalForAll,
		Owner:    &owner,
		Operator: &operator,
		Approved: approved,
	}
}

// Packed - event as stored in the database
type Packed []byte

// flag bits
const (
	hasFrom = 1 << iota
	hasTo
	hasOwner
	hasDelegate
	hasOperator
	isApproved
)

// flag for each entry of accounts()
var accountFlags = []byte{hasFrom, hasTo, hasOwner, hasDelegate, hasOperator}

// header: kind ⧺ flags ⧺ tokenId
const (
	kindOffset    = 0
	flagsOffset   = 1
	tokenIdOffset = 2
	headerLength  = tokenIdOffset + 8
)

// Pack - header followed by each present account in field order
//
// the sequence is the storage key so it is not packed
func (e Event) Pack() Packed {
	buffer := make(Packed, headerLength, headerLength+3*account.Length)
	buffer[kindOffset] = byte(e.Kind)
	binary.BigEndian.PutUint64(buffer[tokenIdOffset:], e.TokenId)

	flags := byte(0)
	for i, a := range e.accounts() {
		if nil != *a {
			flags |= accountFlags[i]
			buffer = append(buffer, (*a).Bytes()...)
		}
	}
	if e.Approved {
		flags |= isApproved
	}
	buffer[flagsOffset] = flags
	return buffer
}

// Unpack - decode a packed event
func (packed Packed) Unpack(sequence uint64) (Event, error) {
	e := Event{
		Sequence: sequence,
	}
	if len(packed) < headerLength {
		return e, fault.ErrInvalidEventPack
	}

	e.Kind = Kind(packed[kindOffset])
	if e.Kind < Transfer || e.Kind > ApprovalForAll {
		return e, fault.ErrInvalidEventPack
	}
	flags := packed[flagsOffset]
	e.TokenId = binary.BigEndian.Uint64(packed[tokenIdOffset:headerLength])
	e.Approved = 0 != flags&isApproved

	n := headerLength
	for i, a := range e.accounts() {
		if 0 == flags&accountFlags[i] {
			continue
		}
		if len(packed) < n+account.Length {
			return e, fault.ErrInvalidEventPack
		}
		id, err := account.FromBytes(packed[n : n+account.Length])
		if nil != err {
			return e, err
		}
		*a = &id
		n += account.Length
	}
	if n != len(packed) {
		return e, fault.ErrInvalidEventPack
	}
	return e, nil
}

// optional accounts in pack order
func (e *Event) accounts() []**account.Account {
	return []**account.Account{&e.From, &e.To, &e.Owner, &e.Delegate, &e.Operator}
}
