// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/rpc/ratelimit"
	"github.com/bitmark-inc/nftd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  *ledger.Ledger
	History *event.Log
	Bus     *messagebus.BroadcastQueue
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, l *ledger.Ledger, history *event.Log, bus *messagebus.BroadcastQueue) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  l,
		History: history,
		Bus:     bus,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string        `json:"version"`
	Uptime      string        `json:"uptime"`
	RPCs        uint64        `json:"rpcs"`
	TotalSupply uint64        `json:"totalSupply,string"`
	NextTokenId uint64        `json:"nextTokenId,string"`
	Nonce       uint64        `json:"nonce,string"`
	Events      uint64        `json:"events,string"`
	Limits      ledger.Limits `json:"limits"`
	Subscribers int           `json:"subscribers"`
	Dropped     uint64        `json:"dropped"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger || nil == node.History {
		return fault.ErrNotInitialised
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.TotalSupply = node.Ledger.TotalSupply(storage.Committed)
	reply.NextTokenId = node.Ledger.NextTokenId(storage.Committed)
	reply.Nonce = node.Ledger.Nonce(storage.Committed)
	reply.Events = node.History.Next(storage.Committed)
	reply.Limits = node.Ledger.Limits()
	if nil != node.Bus {
		reply.Subscribers = node.Bus.Listeners()
		reply.Dropped = node.Bus.Dropped()
	}
	return nil
}
