// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// Burn - destroy a token
func (l *Ledger) Burn(trx storage.Transaction, tokenId uint64) error {
	owner, ok := l.OwnerOf(trx, tokenId)
	if !ok {
		return fault.ErrNotFound
	}

	balance := l.BalanceOf(trx, owner)
	if 0 == balance {
		return fault.ErrBalanceUnderflow
	}

	supply := l.TotalSupply(trx)
	if 0 == supply {
		return fault.ErrSupplyUnderflow
	}

	nonce := l.Nonce(trx)
	if math.MaxUint64 == nonce {
		return fault.ErrNonceOverflow
	}

	if !l.index.Contains(trx, owner, tokenId) {
		l.log.Criticalf("burn: %d  owner: %s  not in owner list", tokenId, owner)
		return fault.ErrOwnershipIndexCorrupt
	}

	err := l.index.Remove(trx, owner, tokenId)
	if nil != err {
		return err
	}

	key := tokenKey(tokenId)
	trx.Delete(l.handles.Payloads, key)
	trx.Delete(l.handles.Approvals, key)
	trx.Delete(l.handles.Owners, key)
	trx.PutN(l.handles.Balances, owner.Bytes(), balance-1)
	trx.PutN(l.handles.Counters, supplyKey, supply-1)
	trx.PutN(l.handles.Counters, nonceKey, nonce+1)

	l.sink.Emit(event.NewTransfer(&owner, nil, tokenId))

	l.log.Debugf("burn: %d  owner: %s", tokenId, owner)
	return nil
}
