// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Payloads  *PoolHandle `prefix:"G"`
	Owners    *PoolHandle `prefix:"O"`
	Approvals *PoolHandle `prefix:"A"`
	Balances  *PoolHandle `prefix:"B"`
	Operators *PoolHandle `prefix:"P"`
	OwnerList *PoolHandle `prefix:"L"`
	Counters  *PoolHandle `prefix:"C"`
	Events    *PoolHandle `prefix:"E"`
	TestData  *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// database engine names
const (
	EngineLevelDB = "leveldb"
	EngineBadger  = "badger"
	EngineMemory  = "memory"
)

// Configuration - database selection
type Configuration struct {
	Engine string `gluamapper:"engine" json:"engine"`
	Name   string `gluamapper:"name" json:"name"`
}

// holds the database handle
var poolData struct {
	sync.RWMutex
	access DataAccess
	trx    Transaction
}

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(configuration Configuration) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.access {
		return fault.ErrAlreadyInitialised
	}

	var access DataAccess
	var err error

	switch configuration.Engine {
	case EngineLevelDB, "":
		access, err = openLevelDB(configuration.Name + ".leveldb")
	case EngineMemory:
		access, err = openLevelDB("")
	case EngineBadger:
		access, err = openBadger(configuration.Name + ".badger")
	default:
		return fault.ErrInvalidDatabaseEngine
	}
	if nil != err {
		return err
	}

	ok := false
	defer func() {
		if !ok {
			access.Close()
		}
	}()

	version, err := getVersion(access)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fault.ErrUnsupportedDatabaseVersion
	}
	if 0 == version {
		err = putVersion(access, currentDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.access = access
	poolData.trx = newTransaction(access, newCache())

	ok = true // prevent db close
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.access {
		return
	}
	err := poolData.access.Close()
	if nil != err {
		logger.Criticalf("storage close error: %s", err)
	}
	poolData.access = nil
	poolData.trx = nil
	Pool = pools{}
}

// NewDBTransaction - start the single write transaction
//
// fails if the previous transaction was neither committed nor aborted
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.ErrNotInitialised
	}
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// GarbageCollect - engine specific space reclamation
func GarbageCollect() error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.access {
		return fault.ErrNotInitialised
	}
	return poolData.access.GarbageCollect()
}

func getVersion(access DataAccess) (int, error) {
	versionValue, err := access.Get(versionKey)
	if nil != err {
		return 0, err
	}
	if nil == versionValue {
		return 0, nil
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(access DataAccess, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	access.Begin()
	access.Put(versionKey, currentVersion)
	return access.Commit()
}
