// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/ownership"
	"github.com/bitmark-inc/nftd/storage"
)

// keys in the counters pool
var (
	supplyKey = []byte("supply")
	nonceKey  = []byte("nonce")
	nextIdKey = []byte("next-id")
)

// value stored for an approved operator
var operatorApproved = []byte{0x01}

// Handles - the pools used by the ledger
type Handles struct {
	Payloads  storage.Handle
	Owners    storage.Handle
	Approvals storage.Handle
	Balances  storage.Handle
	Operators storage.Handle
	OwnerList storage.Handle
	Counters  storage.Handle
}

// PoolHandles - handles of the initialised storage pools
func PoolHandles() Handles {
	return Handles{
		Payloads:  storage.Pool.Payloads,
		Owners:    storage.Pool.Owners,
		Approvals: storage.Pool.Approvals,
		Balances:  storage.Pool.Balances,
		Operators: storage.Pool.Operators,
		OwnerList: storage.Pool.OwnerList,
		Counters:  storage.Pool.Counters,
	}
}

// Limits - upper bounds for checked arithmetic
//
// token ids are issued from [0, TokenIds)
type Limits struct {
	TokenIds uint64 `gluamapper:"token_ids" json:"token_ids,string"`
	Balance  uint64 `gluamapper:"balance" json:"balance,string"`
	Supply   uint64 `gluamapper:"supply" json:"supply,string"`
}

// DefaultLimits - full uint64 range
func DefaultLimits() Limits {
	return Limits{
		TokenIds: math.MaxUint64,
		Balance:  math.MaxUint64,
		Supply:   math.MaxUint64,
	}
}

// Ledger - the token ledger
type Ledger struct {
	handles Handles
	limits  Limits
	index   *ownership.Index
	sink    event.Sink
	log     *logger.L
}

// New - create a ledger over a set of pools
//
// a zero limit is replaced by the default
func New(handles Handles, limits Limits, sink event.Sink, log *logger.L) *Ledger {
	defaults := DefaultLimits()
	if 0 == limits.TokenIds {
		limits.TokenIds = defaults.TokenIds
	}
	if 0 == limits.Balance {
		limits.Balance = defaults.Balance
	}
	if 0 == limits.Supply {
		limits.Supply = defaults.Supply
	}
	if nil == sink {
		sink = event.Discard
	}
	if nil == log {
		logger.Panic("ledger.New: nil logger")
	}

	return &Ledger{
		handles: handles,
		limits:  limits,
		index:   ownership.New(handles.OwnerList),
		sink:    sink,
		log:     log,
	}
}

// Limits - the bounds in use
func (l *Ledger) Limits() Limits {
	return l.limits
}

// Index - the owner list index
func (l *Ledger) Index() *ownership.Index {
	return l.index
}

func tokenKey(tokenId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, tokenId)
	return key
}

func operatorKey(owner account.Account, operator account.Account) []byte {
	key := make([]byte, 0, 2*account.Length)
	key = append(key, owner.Bytes()...)
	return append(key, operator.Bytes()...)
}

// decode an account stored by the ledger itself
func (l *Ledger) storedAccount(pool string, key []byte, value []byte) account.Account {
	a, err := account.FromBytes(value)
	if nil != err {
		l.log.Criticalf("%s: invalid account for key: %x: %x", pool, key, value)
		logger.Panicf("ledger: %s: invalid account for key: %x", pool, key)
	}
	return a
}
