// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package breeding

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/storage"
)

// SelectorSource - per call random bytes, drawn inside the transaction
type SelectorSource interface {
	Selector(storage.Transaction, account.Account) [GenomeLength]byte
}

// Engine - breeding on top of a ledger
type Engine struct {
	ledger *ledger.Ledger
	source SelectorSource
}

// New - create a breeding engine
func New(l *ledger.Ledger, source SelectorSource) *Engine {
	return &Engine{
		ledger: l,
		source: source,
	}
}

// Breed - issue to caller a child of two of caller's tokens
func (e *Engine) Breed(trx storage.Transaction, caller account.Account, parent1 uint64, parent2 uint64, selector Genome) (uint64, error) {
	genome1, genome2, err := e.parents(trx, caller, parent1, parent2)
	if nil != err {
		return 0, err
	}
	return e.ledger.Issue(trx, caller, Combine(genome1, genome2, selector).bytes())
}

// BreedRandom - Breed with a selector drawn from the source
//
// the selector is only drawn once the parents are accepted
func (e *Engine) BreedRandom(trx storage.Transaction, caller account.Account, parent1 uint64, parent2 uint64) (uint64, Genome, error) {
	genome1, genome2, err := e.parents(trx, caller, parent1, parent2)
	if nil != err {
		return 0, Genome{}, err
	}
	if err := e.checkIssue(trx); nil != err {
		return 0, Genome{}, err
	}

	child := Combine(genome1, genome2, e.source.Selector(trx, caller))
	tokenId, err := e.ledger.Issue(trx, caller, child.bytes())
	return tokenId, child, err
}

// Create - issue to caller a token with a random genome
func (e *Engine) Create(trx storage.Transaction, caller account.Account) (uint64, Genome, error) {
	if err := e.checkIssue(trx); nil != err {
		return 0, Genome{}, err
	}

	genome := Genome(e.source.Selector(trx, caller))
	tokenId, err := e.ledger.Issue(trx, caller, genome.bytes())
	return tokenId, genome, err
}

// GenomeOf - genome of a token, false if it does not exist or is not
// a genome
func (e *Engine) GenomeOf(reader storage.Reader, tokenId uint64) (Genome, bool) {
	g, err := GenomeFromBytes(e.ledger.PayloadOf(reader, tokenId))
	return g, nil == err
}

func (e *Engine) parents(reader storage.Reader, caller account.Account, parent1 uint64, parent2 uint64) (Genome, Genome, error) {
	owner1, genome1, err := e.parent(reader, parent1)
	if nil != err {
		return Genome{}, Genome{}, err
	}
	owner2, genome2, err := e.parent(reader, parent2)
	if nil != err {
		return Genome{}, Genome{}, err
	}
	if parent1 == parent2 {
		return Genome{}, Genome{}, fault.ErrIdenticalParents
	}
	if owner1 != caller || owner2 != caller {
		return Genome{}, Genome{}, fault.ErrNotOwner
	}
	return genome1, genome2, nil
}

func (e *Engine) parent(reader storage.Reader, tokenId uint64) (account.Account, Genome, error) {
	owner, ok := e.ledger.OwnerOf(reader, tokenId)
	if !ok {
		return owner, Genome{}, fault.ErrInvalidParent
	}
	genome, err := GenomeFromBytes(e.ledger.PayloadOf(reader, tokenId))
	return owner, genome, err
}

// the id check Issue would make, done before drawing from the source
func (e *Engine) checkIssue(reader storage.Reader) error {
	if e.ledger.NextTokenId(reader) >= e.ledger.Limits().TokenIds {
		return fault.ErrIdCounterExhausted
	}
	return nil
}

func (g Genome) bytes() []byte {
	return g[:]
}
