// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// Issue - create a new token for owner
func (l *Ledger) Issue(trx storage.Transaction, owner account.Account, payload []byte) (uint64, error) {
	tokenId := l.NextTokenId(trx)
	if tokenId >= l.limits.TokenIds {
		return 0, fault.ErrIdCounterExhausted
	}

	key := tokenKey(tokenId)
	if trx.Has(l.handles.Owners, key) {
		return 0, fault.ErrAlreadyExists
	}

	balance := l.BalanceOf(trx, owner)
	if balance >= l.limits.Balance {
		return 0, fault.ErrBalanceOverflow
	}

	supply := l.TotalSupply(trx)
	if supply >= l.limits.Supply {
		return 0, fault.ErrSupplyOverflow
	}

	nonce := l.Nonce(trx)
	if math.MaxUint64 == nonce {
		return 0, fault.ErrNonceOverflow
	}

	err := l.index.Append(trx, owner, tokenId)
	if nil != err {
		return 0, err
	}

	if nil == payload {
		payload = []byte{}
	}
	trx.Put(l.handles.Payloads, key, payload)
	trx.Put(l.handles.Owners, key, owner.Bytes())
	trx.PutN(l.handles.Balances, owner.Bytes(), balance+1)
	trx.PutN(l.handles.Counters, supplyKey, supply+1)
	trx.PutN(l.handles.Counters, nextIdKey, tokenId+1)
	trx.PutN(l.handles.Counters, nonceKey, nonce+1)

	l.sink.Emit(event.NewTransfer(nil, &owner, tokenId))

	l.log.Debugf("issue: %d  owner: %s", tokenId, owner)
	return tokenId, nil
}
