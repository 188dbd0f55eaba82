// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - deterministic per call selectors
//
// selector = BLAKE2b-128(seed ⧺ caller ⧺ counter)
//
// The counter is persisted and incremented inside the caller's
// transaction, so an aborted transition reuses its value.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// miscellaneous constants
const (
	SeedLength     = 32
	SelectorLength = 16
)

// keys in the counters pool
var (
	seedKey    = []byte("seed")
	counterKey = []byte("selector")
)

// Source - selector generator
type Source struct {
	counters storage.Handle
	seed     []byte
}

// New - create a source from a seed
func New(counters storage.Handle, seed []byte) (*Source, error) {
	if SeedLength != len(seed) {
		return nil, fault.ErrInvalidSeed
	}
	s := make([]byte, SeedLength)
	copy(s, seed)
	return &Source{
		counters: counters,
		seed:     s,
	}, nil
}

// LoadSeed - the configured seed, else the stored one, else a new one
//
// a configured seed is hex text; a generated seed is stored so that
// restarts continue the same sequence
func LoadSeed(counters storage.Handle, configured string) ([]byte, error) {
	if "" != configured {
		seed, err := hex.DecodeString(configured)
		if nil != err || SeedLength != len(seed) {
			return nil, fault.ErrInvalidSeed
		}
		return seed, nil
	}

	seed := counters.Get(seedKey)
	if nil != seed {
		if SeedLength != len(seed) {
			return nil, fault.ErrInvalidSeed
		}
		return seed, nil
	}

	seed = make([]byte, SeedLength)
	_, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Put(counters, seedKey, seed)
	err = trx.Commit()
	if nil != err {
		return nil, err
	}

	return seed, nil
}

// Selector - next selector for caller
func (s *Source) Selector(trx storage.Transaction, caller account.Account) [SelectorLength]byte {
	counter, _ := trx.GetN(s.counters, counterKey)

	h, err := blake2b.New(SelectorLength, nil)
	logger.PanicIfError("random: blake2b", err)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, counter)

	h.Write(s.seed)
	h.Write(caller.Bytes())
	h.Write(n)

	var selector [SelectorLength]byte
	copy(selector[:], h.Sum(nil))

	trx.PutN(s.counters, counterKey, counter+1)
	return selector
}

// Counter - number of selectors drawn
func (s *Source) Counter(reader storage.Reader) uint64 {
	counter, _ := reader.GetN(s.counters, counterKey)
	return counter
}
