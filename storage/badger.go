// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

const badgerDiscardRatio = 0.5

type badgerOperation struct {
	op    dbOperation
	key   []byte
	value []byte
}

type badgerAccess struct {
	db    *badger.DB
	batch []badgerOperation
}

// an empty name opens an in-memory database
func openBadger(name string) (DataAccess, error) {
	opts := badger.DefaultOptions(name)
	if "" == name {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if nil != err {
		return nil, err
	}
	return &badgerAccess{
		db: db,
	}, nil
}

func (d *badgerAccess) Begin() {
	d.batch = d.batch[:0]
}

func (d *badgerAccess) Put(key []byte, value []byte) {
	d.batch = append(d.batch, badgerOperation{op: dbPut, key: key, value: value})
}

func (d *badgerAccess) Delete(key []byte) {
	d.batch = append(d.batch, badgerOperation{op: dbDelete, key: key})
}

func (d *badgerAccess) Commit() error {
	err := d.db.Update(func(txn *badger.Txn) error {
		for _, item := range d.batch {
			var err error
			if dbDelete == item.op {
				err = txn.Delete(item.key)
			} else {
				err = txn.Set(item.key, item.value)
			}
			if nil != err {
				return err
			}
		}
		return nil
	})
	d.batch = d.batch[:0]
	return err
}

func (d *badgerAccess) Abort() {
	d.batch = d.batch[:0]
}

func (d *badgerAccess) Get(key []byte) ([]byte, error) {
	var value []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if nil != err {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if nil == err && nil == value {
		value = []byte{}
	}
	return value, err
}

func (d *badgerAccess) Has(key []byte) (bool, error) {
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return nil == err, err
}

func (d *badgerAccess) Iterator(start []byte, limit []byte) Iterator {
	txn := d.db.NewTransaction(false)
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	it.Seek(start)
	return &badgerIterator{
		txn:   txn,
		it:    it,
		limit: limit,
	}
}

// value log GC rewrites at most one file per call
func (d *badgerAccess) GarbageCollect() error {
	if d.db.Opts().InMemory {
		return nil
	}
	for {
		err := d.db.RunValueLogGC(badgerDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if nil != err {
			return err
		}
	}
}

func (d *badgerAccess) Close() error {
	return d.db.Close()
}

type badgerIterator struct {
	txn      *badger.Txn
	it       *badger.Iterator
	limit    []byte
	started  bool
	released bool
	key      []byte
	value    []byte
	err      error
}

func (i *badgerIterator) Next() bool {
	if i.released || nil != i.err {
		return false
	}
	if i.started {
		i.it.Next()
	}
	i.started = true

	if !i.it.Valid() {
		return false
	}
	item := i.it.Item()
	key := item.KeyCopy(nil)
	if nil != i.limit && bytes.Compare(key, i.limit) >= 0 {
		return false
	}
	value, err := item.ValueCopy(nil)
	if nil != err {
		i.err = err
		return false
	}
	i.key = key
	i.value = value
	return true
}

func (i *badgerIterator) Key() []byte {
	return i.key
}

func (i *badgerIterator) Value() []byte {
	return i.value
}

func (i *badgerIterator) Release() {
	if i.released {
		return
	}
	i.released = true
	i.it.Close()
	i.txn.Discard()
}

func (i *badgerIterator) Error() error {
	return i.err
}
