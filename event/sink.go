// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// Sink - receiver of events, emission never fails
type Sink interface {
	Emit(Event)
}

// Buffer - sink holding the events of one transition
type Buffer struct {
	events []Event
}

// Emit - add to the buffer
func (b *Buffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Events - buffered events in emission order
func (b *Buffer) Events() []Event {
	return b.events
}

// Reset - discard buffered events
func (b *Buffer) Reset() {
	b.events = nil
}

// Discard - sink that drops everything
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}
