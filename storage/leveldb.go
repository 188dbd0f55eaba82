// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

type levelDBAccess struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

// an empty name opens an in-memory database
func openLevelDB(name string) (DataAccess, error) {
	var db *leveldb.DB
	var err error

	if "" == name {
		db, err = leveldb.Open(ldb_storage.NewMemStorage(), nil)
	} else {
		opt := &ldb_opt.Options{
			ErrorIfExist:   false,
			ErrorIfMissing: false,
		}
		db, err = leveldb.OpenFile(name, opt)
	}
	if nil != err {
		return nil, err
	}

	return newLevelDBAccess(db), nil
}

func newLevelDBAccess(db *leveldb.DB) DataAccess {
	return &levelDBAccess{
		db:    db,
		batch: new(leveldb.Batch),
	}
}

func (d *levelDBAccess) Begin() {
	d.batch.Reset()
}

func (d *levelDBAccess) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
}

func (d *levelDBAccess) Delete(key []byte) {
	d.batch.Delete(key)
}

func (d *levelDBAccess) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	return err
}

func (d *levelDBAccess) Abort() {
	d.batch.Reset()
}

func (d *levelDBAccess) Get(key []byte) ([]byte, error) {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (d *levelDBAccess) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *levelDBAccess) Iterator(start []byte, limit []byte) Iterator {
	searchRange := ldb_util.Range{
		Start: start, // included in the range
		Limit: limit, // excluded from the range
	}
	return d.db.NewIterator(&searchRange, nil)
}

// LevelDB compacts in the background
func (d *levelDBAccess) GarbageCollect() error {
	return nil
}

func (d *levelDBAccess) Close() error {
	return d.db.Close()
}
