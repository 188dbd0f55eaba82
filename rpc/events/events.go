// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/rpc/ratelimit"
)

const (
	MaximumEventsCount = 100
	rateLimitEvents    = 200
	rateBurstEvents    = 100
)

// Events - type for the RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	History *event.Log
}

// New - create the events service
func New(log *logger.L, history *event.Log) *Events {
	return &Events{
		Log:     log,
		Limiter: ratelimit.New(rateLimitEvents, rateBurstEvents),
		History: history,
	}
}

// ListArguments - arguments for Events.List
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - result of Events.List
type ListReply struct {
	Events []event.Event `json:"events"`
	Next   uint64        `json:"next,string"` // Start value for the next call
}

// List - committed events in sequence order
func (events *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(events.Limiter, arguments.Count, MaximumEventsCount); nil != err {
		return err
	}

	list, err := events.History.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = list
	reply.Next = arguments.Start
	if n := len(list); n > 0 {
		reply.Next = list[n-1].Sequence + 1
	}
	return nil
}
