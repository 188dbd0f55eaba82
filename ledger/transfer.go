// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// TransferFrom - move a token from its owner to another account
//
// from must be the current owner; whether the caller may act for from
// is checked by the caller with Authorise.  A transfer to self moves
// the token to the end of the owner's list and clears its approval.
func (l *Ledger) TransferFrom(trx storage.Transaction, from account.Account, to account.Account, tokenId uint64) error {
	owner, ok := l.OwnerOf(trx, tokenId)
	if !ok {
		return fault.ErrNotFound
	}
	if owner != from {
		return fault.ErrNotOwner
	}

	fromBalance := l.BalanceOf(trx, from)
	if 0 == fromBalance {
		return fault.ErrBalanceUnderflow
	}

	toBalance := l.BalanceOf(trx, to)
	if from != to && toBalance >= l.limits.Balance {
		return fault.ErrBalanceOverflow
	}

	if !l.index.Contains(trx, from, tokenId) {
		l.log.Criticalf("transfer: %d  owner: %s  not in owner list", tokenId, from)
		return fault.ErrOwnershipIndexCorrupt
	}

	// the receiving list must be sound before the token leaves from
	err := l.index.CheckAppend(trx, to)
	if nil != err {
		l.log.Criticalf("transfer: %d  owner: %s  owner list is corrupt", tokenId, to)
		return err
	}

	err = l.index.Remove(trx, from, tokenId)
	if nil != err {
		return err
	}
	err = l.index.Append(trx, to, tokenId)
	if nil != err {
		return err
	}

	key := tokenKey(tokenId)
	trx.Put(l.handles.Owners, key, to.Bytes())
	trx.Delete(l.handles.Approvals, key)
	if from != to {
		trx.PutN(l.handles.Balances, from.Bytes(), fromBalance-1)
		trx.PutN(l.handles.Balances, to.Bytes(), toBalance+1)
	}

	l.sink.Emit(event.NewTransfer(&from, &to, tokenId))

	l.log.Debugf("transfer: %d  from: %s  to: %s", tokenId, from, to)
	return nil
}
