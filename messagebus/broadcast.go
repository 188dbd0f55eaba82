// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/event"
)

// default queue size for a listener
const (
	DefaultQueueSize = 1000
)

// BroadcastQueue - publish to all current listeners
//
// a listener whose queue is full misses the event, a publisher never
// waits
type BroadcastQueue struct {
	sync.RWMutex
	listeners map[<-chan event.Event]chan event.Event
	dropped   counter.Counter
}

// New - empty broadcast queue
func New() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[<-chan event.Event]chan event.Event),
	}
}

// Publish - send an event to every listener
func (queue *BroadcastQueue) Publish(e event.Event) {
	queue.RLock()
	defer queue.RUnlock()

	for _, listener := range queue.listeners {
		select {
		case listener <- e:
		default:
			queue.dropped.Increment()
		}
	}
}

// Subscribe - new listener channel
func (queue *BroadcastQueue) Subscribe(size int) <-chan event.Event {
	if size <= 0 {
		size = DefaultQueueSize
	}
	c := make(chan event.Event, size)

	queue.Lock()
	queue.listeners[c] = c
	queue.Unlock()

	return c
}

// Unsubscribe - remove a listener and close its channel
func (queue *BroadcastQueue) Unsubscribe(c <-chan event.Event) {
	queue.Lock()
	defer queue.Unlock()

	listener, ok := queue.listeners[c]
	if !ok {
		return
	}
	delete(queue.listeners, c)
	close(listener)
}

// Listeners - number of current listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}

// Dropped - events not delivered because a queue was full
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
