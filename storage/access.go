// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// DataAccess - a database engine
//
// Get returns nil, nil for a missing key; Put and Delete are buffered
// in a batch between Begin and Commit/Abort and the batch is written
// atomically
type DataAccess interface {
	Abort()
	Begin()
	Close() error
	Commit() error
	Delete([]byte)
	GarbageCollect() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(start []byte, limit []byte) Iterator
	Put([]byte, []byte)
}

// Iterator - ordered scan over [start, limit)
//
// contents of Key and Value are only valid until the next call to Next
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
	Error() error
}
