// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/storage"
)

// key in the counters pool
var sequenceKey = []byte("event")

// Log - append only event log
//
//	E ⧺ sequence - packed event
type Log struct {
	events   storage.Handle
	counters storage.Handle
}

// NewLog - log over the events pool with its sequence in counters
func NewLog(events storage.Handle, counters storage.Handle) *Log {
	return &Log{
		events:   events,
		counters: counters,
	}
}

// Append - store an event with the next sequence number
func (l *Log) Append(trx storage.Transaction, e Event) Event {
	sequence, _ := trx.GetN(l.counters, sequenceKey)
	e.Sequence = sequence
	trx.Put(l.events, sequenceBytes(sequence), e.Pack())
	trx.PutN(l.counters, sequenceKey, sequence+1)
	return e
}

// Next - sequence number of the next event
func (l *Log) Next(reader storage.Reader) uint64 {
	sequence, _ := reader.GetN(l.counters, sequenceKey)
	return sequence
}

// Fetch - committed events from start, at most count
func (l *Log) Fetch(start uint64, count int) ([]Event, error) {
	cursor := l.events.NewFetchCursor().Seek(sequenceBytes(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	events := make([]Event, 0, len(elements))
	for _, element := range elements {
		if 8 != len(element.Key) {
			logger.Panicf("event log: invalid key: %x", element.Key)
		}
		e, err := Packed(element.Value).Unpack(binary.BigEndian.Uint64(element.Key))
		if nil != err {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func sequenceBytes(sequence uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, sequence)
	return buffer
}
