// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/nftd/fault"
)

var testPool = &PoolHandle{
	prefix: 'Z',
	limit:  []byte{'Z' + 1},
}

func setupTestTransaction(t *testing.T) (Transaction, *MockDataAccess) {
	ctl := gomock.NewController(t)
	mock := NewMockDataAccess(ctl)
	return newTransaction(mock, newCache()), mock
}

func TestBegin(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	mock.EXPECT().Begin().Times(1)

	err := trx.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")
	assert.True(t, trx.InUse(), "transaction not in use after Begin")

	err = trx.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second time Begin should return error")
}

func TestPutThenGetReadsOverlay(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	key := []byte("key")
	value := []byte("value")

	gomock.InOrder(
		mock.EXPECT().Begin(),
		mock.EXPECT().Put(testPool.Key(key), value).Times(1),
	)

	_ = trx.Begin()
	trx.Put(testPool, key, value)

	// no database read expected: the mock fails on any Get or Has
	assert.Equal(t, value, trx.Get(testPool, key), "wrong value from overlay")
	assert.True(t, trx.Has(testPool, key), "overlay key not found")
}

func TestDeleteHidesCommittedValue(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	key := []byte("key")

	mock.EXPECT().Begin()
	mock.EXPECT().Delete(testPool.Key(key)).Times(1)

	_ = trx.Begin()
	trx.Delete(testPool, key)

	// the database would still return the old value
	mock.EXPECT().Get(gomock.Any()).Return([]byte("stale"), nil).Times(0)
	mock.EXPECT().Has(gomock.Any()).Return(true, nil).Times(0)

	assert.Nil(t, trx.Get(testPool, key), "deleted key visible")
	assert.False(t, trx.Has(testPool, key), "deleted key reported present")
}

func TestGetFallsThroughToDatabase(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	key := []byte("key")

	mock.EXPECT().Begin()
	mock.EXPECT().Get(testPool.Key(key)).Return(encodeN(42), nil).Times(1)
	mock.EXPECT().Has(testPool.Key(key)).Return(true, nil).Times(1)

	_ = trx.Begin()
	n, found := trx.GetN(testPool, key)
	assert.True(t, found, "committed value not found")
	assert.Equal(t, uint64(42), n, "wrong committed value")
	assert.True(t, trx.Has(testPool, key), "committed key not present")
}

func TestCommit(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	key := []byte("key")

	gomock.InOrder(
		mock.EXPECT().Begin(),
		mock.EXPECT().Put(gomock.Any(), gomock.Any()),
		mock.EXPECT().Commit().Return(nil).Times(1),
		mock.EXPECT().Get(testPool.Key(key)).Return(nil, nil).Times(1),
	)

	_ = trx.Begin()
	trx.PutN(testPool, key, 7)
	err := trx.Commit()
	assert.Nil(t, err, "commit error")
	assert.False(t, trx.InUse(), "transaction still in use after commit")

	// overlay is cleared so the read goes to the database
	assert.Nil(t, trx.Get(testPool, key), "overlay not cleared")

	err = trx.Commit()
	assert.Equal(t, fault.ErrTransactionNotInUse, err, "commit without begin")
}

func TestCommitError(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	writeFailed := errors.New("write failed")

	mock.EXPECT().Begin()
	mock.EXPECT().Commit().Return(writeFailed)

	_ = trx.Begin()
	err := trx.Commit()
	assert.Equal(t, writeFailed, err, "commit error not returned")
	assert.False(t, trx.InUse(), "transaction still in use after failed commit")
}

func TestAbort(t *testing.T) {
	trx, mock := setupTestTransaction(t)
	key := []byte("key")

	gomock.InOrder(
		mock.EXPECT().Begin(),
		mock.EXPECT().Put(gomock.Any(), gomock.Any()),
		mock.EXPECT().Abort().Times(1),
		mock.EXPECT().Get(testPool.Key(key)).Return(nil, nil),
	)

	_ = trx.Begin()
	trx.Put(testPool, key, []byte("discard"))
	trx.Abort()

	assert.False(t, trx.InUse(), "transaction still in use after abort")
	assert.Nil(t, trx.Get(testPool, key), "aborted write visible")
}
