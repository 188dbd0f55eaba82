// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/fault"
)

func testConfigurations(t *testing.T) []Configuration {
	dir := t.TempDir()
	return []Configuration{
		{Engine: EngineMemory},
		{Engine: EngineLevelDB, Name: filepath.Join(dir, "test")},
		{Engine: EngineBadger, Name: filepath.Join(dir, "test")},
	}
}

func TestEngines(t *testing.T) {
	for _, configuration := range testConfigurations(t) {
		t.Run(configuration.Engine, func(t *testing.T) {
			err := Initialise(configuration)
			require.Nil(t, err, "initialise")
			defer Finalise()

			trx, err := NewDBTransaction()
			require.Nil(t, err, "new transaction")

			for i := 0; i < 5; i += 1 {
				trx.Put(Pool.TestData, []byte(fmt.Sprintf("key-%d", i)), []byte(fmt.Sprintf("data-%d", i)))
			}
			trx.PutN(Pool.Counters, []byte("n"), 99)

			// nothing visible outside the transaction yet
			assert.Nil(t, Pool.TestData.Get([]byte("key-0")), "uncommitted data visible")
			assert.False(t, Pool.TestData.Has([]byte("key-0")), "uncommitted key present")

			_, err = NewDBTransaction()
			assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second writer allowed")

			err = trx.Commit()
			require.Nil(t, err, "commit")

			assert.Equal(t, []byte("data-3"), Pool.TestData.Get([]byte("key-3")), "committed value")
			assert.True(t, Pool.TestData.Has([]byte("key-3")), "committed key")
			n, found := Committed.GetN(Pool.Counters, []byte("n"))
			assert.True(t, found, "counter not found")
			assert.Equal(t, uint64(99), n, "counter value")

			cursor := Pool.TestData.NewFetchCursor()
			sizes := []int{2, 2, 1, 0}
			seen := 0
			for _, size := range sizes {
				elements, err := cursor.Fetch(2)
				assert.Nil(t, err, "fetch")
				require.Equal(t, size, len(elements), "page size")
				for _, e := range elements {
					assert.Equal(t, fmt.Sprintf("key-%d", seen), string(e.Key), "key order")
					assert.Equal(t, fmt.Sprintf("data-%d", seen), string(e.Value), "value")
					seen += 1
				}
			}

			trx, err = NewDBTransaction()
			require.Nil(t, err, "new transaction")
			trx.Delete(Pool.TestData, []byte("key-1"))
			err = trx.Commit()
			require.Nil(t, err, "commit")

			assert.Nil(t, Pool.TestData.Get([]byte("key-1")), "deleted value")

			count := 0
			err = Pool.TestData.NewFetchCursor().Seek([]byte("key-2")).Map(func(key []byte, value []byte) error {
				count += 1
				return nil
			})
			assert.Nil(t, err, "map")
			assert.Equal(t, 3, count, "elements after seek")

			assert.Nil(t, GarbageCollect(), "garbage collect")
		})
	}
}

func TestInitialise(t *testing.T) {
	err := Initialise(Configuration{Engine: "no-such-engine"})
	assert.Equal(t, fault.ErrInvalidDatabaseEngine, err, "invalid engine accepted")

	err = Initialise(Configuration{Engine: EngineMemory})
	require.Nil(t, err, "initialise")
	defer Finalise()

	err = Initialise(Configuration{Engine: EngineMemory})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "double initialise")
}

func TestRejectNewerDatabase(t *testing.T) {
	configuration := Configuration{
		Engine: EngineLevelDB,
		Name:   filepath.Join(t.TempDir(), "version"),
	}

	err := Initialise(configuration)
	require.Nil(t, err, "initialise")
	err = putVersion(poolData.access, currentDBVersion+1)
	require.Nil(t, err, "put version")
	Finalise()

	err = Initialise(configuration)
	assert.Equal(t, fault.ErrUnsupportedDatabaseVersion, err, "newer database accepted")

	_, err = NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err, "transaction without database")
}

func TestFetchCursorErrors(t *testing.T) {
	var cursor *FetchCursor
	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")

	_, err = testPool.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
