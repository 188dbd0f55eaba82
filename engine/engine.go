// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - apply ledger transitions one at a time
//
// Each request runs in its own storage transaction: the caller is
// authorised, the operation runs, its events are appended to the event
// log and the transaction is committed.  Any error aborts the
// transaction so the store is unchanged.  Events reach the message bus
// only after a successful commit.
package engine

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/breeding"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/random"
	"github.com/bitmark-inc/nftd/storage"
)

// operation names for logs and metrics
const (
	OperationIssue             = "issue"
	OperationCreate            = "create"
	OperationBreed             = "breed"
	OperationTransfer          = "transfer"
	OperationBurn              = "burn"
	OperationApprove           = "approve"
	OperationSetApprovalForAll = "setApprovalForAll"
)

// DefaultMaximumPayload - largest payload accepted by Issue
const DefaultMaximumPayload = 4096

// Configuration - engine settings
type Configuration struct {
	Limits         ledger.Limits
	MaximumPayload int
	Seed           string
}

// Transitions - the state changing requests
type Transitions interface {
	Issue(caller account.Account, payload []byte) (uint64, error)
	Create(caller account.Account) (uint64, breeding.Genome, error)
	Breed(caller account.Account, parent1 uint64, parent2 uint64) (uint64, breeding.Genome, error)
	Transfer(caller account.Account, from account.Account, to account.Account, tokenId uint64) error
	Burn(caller account.Account, tokenId uint64) error
	Approve(caller account.Account, delegate account.Account, tokenId uint64) error
	SetApprovalForAll(caller account.Account, operator account.Account, approved bool) error
}

var _ Transitions = (*Engine)(nil)

// Engine - the single writer
type Engine struct {
	sync.Mutex

	log            *logger.L
	ledger         *ledger.Ledger
	breeding       *breeding.Engine
	random         *random.Source
	events         *event.Log
	buffer         *event.Buffer
	bus            *messagebus.BroadcastQueue
	maximumPayload int
}

// New - create the engine over the initialised storage pools
func New(configuration Configuration, bus *messagebus.BroadcastQueue, log *logger.L) (*Engine, error) {
	seed, err := random.LoadSeed(storage.Pool.Counters, configuration.Seed)
	if nil != err {
		return nil, err
	}
	source, err := random.New(storage.Pool.Counters, seed)
	if nil != err {
		return nil, err
	}

	if nil == bus {
		bus = messagebus.New()
	}

	maximumPayload := configuration.MaximumPayload
	if maximumPayload <= 0 {
		maximumPayload = DefaultMaximumPayload
	}

	buffer := &event.Buffer{}
	l := ledger.New(ledger.PoolHandles(), configuration.Limits, buffer, logger.New("ledger"))

	RegisterMetrics()

	e := &Engine{
		log:            log,
		ledger:         l,
		breeding:       breeding.New(l, source),
		random:         source,
		events:         event.NewLog(storage.Pool.Events, storage.Pool.Counters),
		buffer:         buffer,
		bus:            bus,
		maximumPayload: maximumPayload,
	}
	totalSupply.Set(float64(l.TotalSupply(storage.Committed)))

	log.Infof("total supply: %d  next token id: %d", l.TotalSupply(storage.Committed), l.NextTokenId(storage.Committed))
	return e, nil
}

// Ledger - for committed reads
func (e *Engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// Breeding - for genome reads
func (e *Engine) Breeding() *breeding.Engine {
	return e.breeding
}

// Events - the persistent event log
func (e *Engine) Events() *event.Log {
	return e.events
}

// Issue - issue a token with an opaque payload to the caller
func (e *Engine) Issue(caller account.Account, payload []byte) (uint64, error) {
	if len(payload) > e.maximumPayload {
		return 0, fault.ErrPayloadTooLarge
	}

	var tokenId uint64
	err := e.transition(OperationIssue, func(trx storage.Transaction) error {
		var err error
		tokenId, err = e.ledger.Issue(trx, caller, payload)
		return err
	})
	return tokenId, err
}

// Create - issue a token with a random genome to the caller
func (e *Engine) Create(caller account.Account) (uint64, breeding.Genome, error) {
	var tokenId uint64
	var genome breeding.Genome
	err := e.transition(OperationCreate, func(trx storage.Transaction) error {
		var err error
		tokenId, genome, err = e.breeding.Create(trx, caller)
		return err
	})
	return tokenId, genome, err
}

// Breed - issue to the caller a child of two of the caller's tokens
func (e *Engine) Breed(caller account.Account, parent1 uint64, parent2 uint64) (uint64, breeding.Genome, error) {
	var tokenId uint64
	var genome breeding.Genome
	err := e.transition(OperationBreed, func(trx storage.Transaction) error {
		var err error
		tokenId, genome, err = e.breeding.BreedRandom(trx, caller, parent1, parent2)
		return err
	})
	return tokenId, genome, err
}

// Transfer - move a token; caller must be the owner, its approved
// delegate or an operator of the owner
func (e *Engine) Transfer(caller account.Account, from account.Account, to account.Account, tokenId uint64) error {
	return e.transition(OperationTransfer, func(trx storage.Transaction) error {
		_, err := e.ledger.Authorise(trx, caller, tokenId)
		if nil != err {
			return err
		}
		return e.ledger.TransferFrom(trx, from, to, tokenId)
	})
}

// Burn - destroy a token; same authorisation as Transfer
func (e *Engine) Burn(caller account.Account, tokenId uint64) error {
	return e.transition(OperationBurn, func(trx storage.Transaction) error {
		_, err := e.ledger.Authorise(trx, caller, tokenId)
		if nil != err {
			return err
		}
		return e.ledger.Burn(trx, tokenId)
	})
}

// Approve - caller lets delegate transfer one of its tokens
func (e *Engine) Approve(caller account.Account, delegate account.Account, tokenId uint64) error {
	return e.transition(OperationApprove, func(trx storage.Transaction) error {
		return e.ledger.Approve(trx, caller, delegate, tokenId)
	})
}

// SetApprovalForAll - caller sets or clears an operator
func (e *Engine) SetApprovalForAll(caller account.Account, operator account.Account, approved bool) error {
	return e.transition(OperationSetApprovalForAll, func(trx storage.Transaction) error {
		return e.ledger.SetApprovalForAll(trx, caller, operator, approved)
	})
}

// run one operation as a single committed or aborted transaction
func (e *Engine) transition(operation string, f func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	start := time.Now()
	e.buffer.Reset()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		e.log.Errorf("%s: begin error: %s", operation, err)
		recordTransition(operation, err, time.Since(start))
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		e.buffer.Reset()
		e.log.Debugf("%s: rejected: %s", operation, err)
		recordTransition(operation, err, time.Since(start))
		return err
	}

	committed := make([]event.Event, 0, len(e.buffer.Events()))
	for _, item := range e.buffer.Events() {
		committed = append(committed, e.events.Append(trx, item))
	}
	e.buffer.Reset()

	err = trx.Commit()
	if nil != err {
		e.log.Criticalf("%s: commit error: %s", operation, err)
		recordTransition(operation, err, time.Since(start))
		return err
	}

	totalSupply.Set(float64(e.ledger.TotalSupply(storage.Committed)))
	recordTransition(operation, nil, time.Since(start))

	for _, item := range committed {
		e.bus.Publish(item)
	}
	return nil
}
