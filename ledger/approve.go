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

// Approve - let delegate transfer one of caller's tokens
//
// a token that does not exist has no owner, so this is NotOwner
func (l *Ledger) Approve(trx storage.Transaction, caller account.Account, delegate account.Account, tokenId uint64) error {
	owner, ok := l.OwnerOf(trx, tokenId)
	if !ok || owner != caller {
		return fault.ErrNotOwner
	}
	if delegate == caller {
		return fault.ErrSelfApproval
	}

	trx.Put(l.handles.Approvals, tokenKey(tokenId), delegate.Bytes())

	l.sink.Emit(event.NewApproval(owner, delegate, tokenId))

	l.log.Debugf("approve: %d  owner: %s  delegate: %s", tokenId, owner, delegate)
	return nil
}

// SetApprovalForAll - let operator act for all of caller's tokens
func (l *Ledger) SetApprovalForAll(trx storage.Transaction, caller account.Account, operator account.Account, approved bool) error {
	if operator == caller {
		return fault.ErrSelfApproval
	}

	key := operatorKey(caller, operator)
	if approved {
		trx.Put(l.handles.Operators, key, operatorApproved)
	} else {
		trx.Delete(l.handles.Operators, key)
	}

	l.sink.Emit(event.NewApprovalForAll(caller, operator, approved))

	l.log.Debugf("operator: %s  owner: %s  approved: %t", operator, caller, approved)
	return nil
}
