// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/engine"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/rpc/events"
	"github.com/bitmark-inc/nftd/rpc/node"
	"github.com/bitmark-inc/nftd/rpc/owner"
	"github.com/bitmark-inc/nftd/rpc/token"
)

// Create - RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, e *engine.Engine, bus *messagebus.BroadcastQueue) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, e, e.Ledger(), e.Breeding()))
	_ = server.Register(owner.New(log, e.Ledger()))
	_ = server.Register(events.New(log, e.Events()))
	_ = server.Register(node.New(log, start, version, rpcCount, e.Ledger(), e.Events(), bus))

	return server
}
