// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/storage"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// writes every committed event to the log
type eventLogger struct {
	log   *logger.L
	bus   *messagebus.BroadcastQueue
	queue <-chan event.Event
}

func newEventLogger(bus *messagebus.BroadcastQueue, size int) *eventLogger {
	return &eventLogger{
		log:   logger.New("events"),
		bus:   bus,
		queue: bus.Subscribe(size),
	}
}

func (el *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	log := el.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case e := <-el.queue:
			switch e.Kind {
			case event.Transfer:
				log.Infof("%d: %s token: %d  from: %v  to: %v", e.Sequence, e.Kind, e.TokenId, e.From, e.To)
			case event.Approval:
				log.Infof("%d: %s token: %d  owner: %v  delegate: %v", e.Sequence, e.Kind, e.TokenId, e.Owner, e.Delegate)
			case event.ApprovalForAll:
				log.Infof("%d: %s owner: %v  operator: %v  approved: %t", e.Sequence, e.Kind, e.Owner, e.Operator, e.Approved)
			default:
				log.Warnf("%d: unexpected event kind: %d", e.Sequence, e.Kind)
			}
		}
	}
	el.bus.Unsubscribe(el.queue)
	log.Info("shutting down…")
}

// periodic storage space reclamation
type collector struct {
	log   *logger.L
	delay time.Duration
}

func newCollector(seconds int) *collector {
	return &collector{
		log:   logger.New("collector"),
		delay: time.Duration(seconds) * time.Second,
	}
}

func (c *collector) Run(args interface{}, shutdown <-chan struct{}) {
	log := c.log
	log.Infof("starting… interval: %s", c.delay)

	ticker := time.NewTicker(c.delay)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			if err := storage.GarbageCollect(); nil != err {
				log.Warnf("garbage collect error: %s", err)
			}
		}
	}
	log.Info("shutting down…")
}

// memory usage statistics
type memoryStats struct {
	log *logger.L
}

func (m *memoryStats) Run(args interface{}, shutdown <-chan struct{}) {
	log := m.log

	for {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		text, err := json.Marshal(stats)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Infof("stats: %s", text)
		}
		a := stats.Alloc / mega
		t := stats.TotalAlloc / mega
		s := stats.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		select {
		case <-shutdown:
			return
		case <-time.After(statsDelay):
		}
	}
}
