// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/storage"
)

const (
	testingDirName = "testing"
)

// test accounts
var (
	accountA = makeAccount(0xa1)
	accountB = makeAccount(0xb2)
	accountC = makeAccount(0xc3)
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func makeAccount(b byte) account.Account {
	var a account.Account
	for i := range a {
		a[i] = b
	}
	return a
}

// fresh in-memory database and ledger
func setupLedger(t *testing.T, limits ledger.Limits) (*ledger.Ledger, *event.Buffer) {
	err := storage.Initialise(storage.Configuration{Engine: storage.EngineMemory})
	require.Nil(t, err, "storage initialise")
	t.Cleanup(storage.Finalise)

	buffer := &event.Buffer{}
	l := ledger.New(ledger.PoolHandles(), limits, buffer, logger.New("ledger"))
	return l, buffer
}

// run f in a transaction, commit on success, abort on error
func update(t *testing.T, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "new transaction")
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	require.Nil(t, trx.Commit(), "commit")
	return nil
}

func issue(t *testing.T, l *ledger.Ledger, owner account.Account, payload []byte) uint64 {
	var tokenId uint64
	err := update(t, func(trx storage.Transaction) error {
		var err error
		tokenId, err = l.Issue(trx, owner, payload)
		return err
	})
	require.Nil(t, err, "issue")
	return tokenId
}

func tokensOf(t *testing.T, l *ledger.Ledger, owner account.Account) []uint64 {
	tokens, err := l.TokensOf(storage.Committed, owner)
	require.Nil(t, err, "tokens of")
	return tokens
}

// raw contents of every pool
func snapshot(t *testing.T) map[string]string {
	contents := make(map[string]string)
	handles := []*storage.PoolHandle{
		storage.Pool.Payloads,
		storage.Pool.Owners,
		storage.Pool.Approvals,
		storage.Pool.Balances,
		storage.Pool.Operators,
		storage.Pool.OwnerList,
		storage.Pool.Counters,
	}
	for _, h := range handles {
		err := h.NewFetchCursor().Map(func(key []byte, value []byte) error {
			contents[string(h.Key(key))] = string(value)
			return nil
		})
		require.Nil(t, err, "snapshot")
	}
	return contents
}

// check the standing invariants against the committed state
func checkInvariants(t *testing.T, l *ledger.Ledger, accounts ...account.Account) {
	owned := make(map[account.Account]int)
	live := uint64(0)
	err := storage.Pool.Owners.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.FromBytes(value)
		require.Nil(t, err, "owner record")
		owned[owner] += 1
		live += 1
		return nil
	})
	require.Nil(t, err, "owners scan")

	assert.Equal(t, live, l.TotalSupply(storage.Committed), "total supply differs from live owner records")

	for _, a := range accounts {
		tokens := tokensOf(t, l, a)
		balance := l.BalanceOf(storage.Committed, a)
		assert.Equal(t, uint64(owned[a]), balance, "balance of %s differs from owner records", a)
		assert.Equal(t, uint64(len(tokens)), balance, "balance of %s differs from owner list", a)

		seen := make(map[uint64]bool)
		for _, tokenId := range tokens {
			assert.False(t, seen[tokenId], "duplicate %d in list of %s", tokenId, a)
			seen[tokenId] = true

			owner, ok := l.OwnerOf(storage.Committed, tokenId)
			assert.True(t, ok, "listed token %d has no owner", tokenId)
			assert.Equal(t, a, owner, "listed token %d has another owner", tokenId)
		}
	}
}
