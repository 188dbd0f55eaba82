// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/fault"
)

// Transaction - the single write transaction
//
// reads see the transaction's own uncommitted writes; nothing reaches
// the database until Commit
type Transaction interface {
	Reader
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Commit() error
	Abort()
	InUse() bool
}

type transactionData struct {
	sync.Mutex
	inUse  bool
	access DataAccess
	cache  Cache
}

func newTransaction(access DataAccess, cache Cache) Transaction {
	return &transactionData{
		inUse:  false,
		access: access,
		cache:  cache,
	}
}

func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionAlreadyInUse
	}

	t.access.Begin()
	t.cache.Clear()
	t.inUse = true
	return nil
}

func (t *transactionData) Put(h Handle, key []byte, value []byte) {
	k := h.Key(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.cache.Set(dbPut, string(k), v)
	t.access.Put(k, v)
}

func (t *transactionData) PutN(h Handle, key []byte, value uint64) {
	t.Put(h, key, encodeN(value))
}

func (t *transactionData) Delete(h Handle, key []byte) {
	k := h.Key(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.access.Delete(k)
}

func (t *transactionData) Get(h Handle, key []byte) []byte {
	k := h.Key(key)
	value, op, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}

	value, err := t.access.Get(k)
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(h, key))
}

func (t *transactionData) Has(h Handle, key []byte) bool {
	k := h.Key(key)
	_, op, found := t.cache.Get(string(k))
	if found {
		return dbPut == op
	}

	value, err := t.access.Has(k)
	logger.PanicIfError("transaction.Has", err)
	return value
}

func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}

	err := t.access.Commit()
	t.cache.Clear()
	t.inUse = false
	return err
}

func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.access.Abort()
	t.cache.Clear()
	t.inUse = false
}

func (t *transactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
