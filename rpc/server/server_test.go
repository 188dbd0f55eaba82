// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/engine"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/rpc/events"
	"github.com/bitmark-inc/nftd/rpc/fixtures"
	"github.com/bitmark-inc/nftd/rpc/node"
	"github.com/bitmark-inc/nftd/rpc/origin"
	"github.com/bitmark-inc/nftd/rpc/owner"
	"github.com/bitmark-inc/nftd/rpc/server"
	"github.com/bitmark-inc/nftd/rpc/token"
)

const seed = "0000000000000000000000000000000000000000000000000000000000000001"

func connect(t *testing.T) *rpc.Client {
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)
	fixtures.SetupStorage(t)

	bus := messagebus.New()
	e, err := engine.New(engine.Configuration{Seed: seed}, bus, logger.New(fixtures.LogCategory))
	require.Nil(t, err, "engine")

	c := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, e, bus)

	serverEnd, clientEnd := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverEnd))

	client := jsonrpc.NewClient(clientEnd)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func signed(t *testing.T, method string, fields ...origin.Field) origin.Request {
	r, err := origin.Sign(fixtures.OwnerPrivateKey, method, time.Now(), fields...)
	require.Nil(t, err, "sign")
	return r
}

func TestIssueTransferList(t *testing.T) {
	client := connect(t)

	var id token.IdReply
	for i := 0; i < 3; i += 1 {
		payload := []byte{byte(i)}
		arg := token.IssueArguments{
			Request: signed(t, token.MethodIssue, origin.Field(payload)),
			Payload: payload,
		}
		err := client.Call(token.MethodIssue, &arg, &id)
		require.Nil(t, err, "Token.Issue")
		assert.Equal(t, uint64(i), id.TokenId, "token id")
	}

	transfer := token.TransferArguments{
		Request: signed(t, token.MethodTransfer,
			origin.Account(fixtures.Owner),
			origin.Account(fixtures.Delegate),
			origin.Uint64(1),
		),
		From:    fixtures.Owner,
		To:      fixtures.Delegate,
		TokenId: 1,
	}
	var status token.StatusReply
	err := client.Call(token.MethodTransfer, &transfer, &status)
	require.Nil(t, err, "Token.Transfer")

	var get token.GetReply
	err = client.Call(token.MethodGet, &token.GetArguments{TokenId: 1}, &get)
	require.Nil(t, err, "Token.Get")
	assert.Equal(t, fixtures.Delegate, get.Owner, "owner after transfer")
	assert.Equal(t, []byte{1}, get.Payload, "payload")

	var tokens owner.TokensReply
	err = client.Call("Owner.Tokens", &owner.TokensArguments{Owner: fixtures.Owner, Count: 10}, &tokens)
	require.Nil(t, err, "Owner.Tokens")
	assert.Equal(t, []uint64{0, 2}, tokens.Tokens, "owner tokens")
	assert.Nil(t, tokens.Next, "owner next")

	var balance owner.BalanceReply
	err = client.Call("Owner.Balance", &owner.BalanceArguments{Owner: fixtures.Delegate}, &balance)
	require.Nil(t, err, "Owner.Balance")
	assert.Equal(t, uint64(1), balance.Balance, "delegate balance")

	var list events.ListReply
	err = client.Call("Events.List", &events.ListArguments{Start: 0, Count: 10}, &list)
	require.Nil(t, err, "Events.List")
	require.Equal(t, 4, len(list.Events), "event count")
	assert.Equal(t, event.Transfer, list.Events[3].Kind, "last event kind")
	assert.Equal(t, &fixtures.Owner, list.Events[3].From, "last event from")
	assert.Equal(t, &fixtures.Delegate, list.Events[3].To, "last event to")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	require.Nil(t, err, "Node.Info")
	assert.Equal(t, uint64(3), info.TotalSupply, "supply")
	assert.Equal(t, "1.0", info.Version, "version")
}

func TestStrangerCannotBurn(t *testing.T) {
	client := connect(t)

	var id token.IdReply
	arg := token.CreateArguments{Request: signed(t, token.MethodCreate)}
	err := client.Call(token.MethodCreate, &arg, &id)
	require.Nil(t, err, "Token.Create")
	require.NotNil(t, id.Genome, "genome")

	burn, err := origin.Sign(fixtures.StrangerPrivateKey, token.MethodBurn, time.Now(), origin.Uint64(id.TokenId))
	require.Nil(t, err, "sign")

	var status token.StatusReply
	err = client.Call(token.MethodBurn, &token.BurnArguments{Request: burn, TokenId: id.TokenId}, &status)
	require.NotNil(t, err, "Token.Burn")
	assert.Equal(t, fault.ErrNotAuthorised.Error(), err.Error(), "wrong reply")
}
