// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/rpc/events"
	"github.com/bitmark-inc/nftd/rpc/fixtures"
	"github.com/bitmark-inc/nftd/storage"
)

func TestEventsList(t *testing.T) {
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)
	fixtures.SetupStorage(t)

	history := event.NewLog(storage.Pool.Events, storage.Pool.Counters)

	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction")
	for i := uint64(0); i < 5; i += 1 {
		history.Append(trx, event.NewTransfer(nil, &fixtures.Owner, i))
	}
	require.Nil(t, trx.Commit(), "commit")

	e := events.New(logger.New(fixtures.LogCategory), history)

	var reply events.ListReply
	err = e.List(&events.ListArguments{Start: 1, Count: 3}, &reply)
	require.Nil(t, err, "wrong List")
	require.Equal(t, 3, len(reply.Events), "wrong count")
	assert.Equal(t, uint64(4), reply.Next, "wrong next")
	for i, item := range reply.Events {
		assert.Equal(t, uint64(i+1), item.Sequence, "wrong sequence")
		assert.Equal(t, uint64(i+1), item.TokenId, "wrong token")
		assert.Equal(t, event.Transfer, item.Kind, "wrong kind")
	}

	err = e.List(&events.ListArguments{Start: reply.Next, Count: 3}, &reply)
	require.Nil(t, err, "wrong List")
	assert.Equal(t, 1, len(reply.Events), "wrong tail count")
	assert.Equal(t, uint64(5), reply.Next, "wrong tail next")

	err = e.List(&events.ListArguments{Start: reply.Next, Count: 3}, &reply)
	require.Nil(t, err, "wrong List")
	assert.Equal(t, 0, len(reply.Events), "wrong empty count")
	assert.Equal(t, uint64(5), reply.Next, "wrong empty next")

	err = e.List(&events.ListArguments{Count: 0}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
