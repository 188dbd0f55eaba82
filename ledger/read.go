// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// OwnerOf - current owner, false if the token does not exist
func (l *Ledger) OwnerOf(reader storage.Reader, tokenId uint64) (account.Account, bool) {
	key := tokenKey(tokenId)
	value := reader.Get(l.handles.Owners, key)
	if nil == value {
		return account.Account{}, false
	}
	return l.storedAccount("owners", key, value), true
}

// BalanceOf - number of tokens held by an account
func (l *Ledger) BalanceOf(reader storage.Reader, owner account.Account) uint64 {
	balance, _ := reader.GetN(l.handles.Balances, owner.Bytes())
	return balance
}

// GetApproved - the approved delegate of a token, false if none
func (l *Ledger) GetApproved(reader storage.Reader, tokenId uint64) (account.Account, bool) {
	key := tokenKey(tokenId)
	value := reader.Get(l.handles.Approvals, key)
	if nil == value {
		return account.Account{}, false
	}
	return l.storedAccount("approvals", key, value), true
}

// IsApprovedForAll - check if operator may act for all of owner's tokens
func (l *Ledger) IsApprovedForAll(reader storage.Reader, owner account.Account, operator account.Account) bool {
	return reader.Has(l.handles.Operators, operatorKey(owner, operator))
}

// TotalSupply - number of existing tokens
func (l *Ledger) TotalSupply(reader storage.Reader) uint64 {
	supply, _ := reader.GetN(l.handles.Counters, supplyKey)
	return supply
}

// Nonce - count of issues and burns
func (l *Ledger) Nonce(reader storage.Reader) uint64 {
	nonce, _ := reader.GetN(l.handles.Counters, nonceKey)
	return nonce
}

// NextTokenId - the id the next issue will use
func (l *Ledger) NextTokenId(reader storage.Reader) uint64 {
	tokenId, _ := reader.GetN(l.handles.Counters, nextIdKey)
	return tokenId
}

// PayloadOf - token payload, nil if the token does not exist
func (l *Ledger) PayloadOf(reader storage.Reader, tokenId uint64) []byte {
	return reader.Get(l.handles.Payloads, tokenKey(tokenId))
}

// TokensOf - all tokens of an owner in list order
func (l *Ledger) TokensOf(reader storage.Reader, owner account.Account) ([]uint64, error) {
	return l.index.Tokens(reader, owner)
}

// Authorise - check that caller may move a token
//
// passes for the owner, the approved delegate or an operator of the
// owner and returns the current owner
func (l *Ledger) Authorise(reader storage.Reader, caller account.Account, tokenId uint64) (account.Account, error) {
	owner, ok := l.OwnerOf(reader, tokenId)
	if !ok {
		return owner, fault.ErrNotFound
	}
	if caller == owner {
		return owner, nil
	}
	if delegate, ok := l.GetApproved(reader, tokenId); ok && delegate == caller {
		return owner, nil
	}
	if l.IsApprovedForAll(reader, owner, caller) {
		return owner, nil
	}
	return owner, fault.ErrNotAuthorised
}
