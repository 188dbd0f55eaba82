// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/rpc/ratelimit"
	"github.com/bitmark-inc/nftd/storage"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

const (
	MaximumTokensCount = 100
	rateLimitOwner     = 200
	rateBurstOwner     = 100
)

// New - create the owner service
func New(log *logger.L, l *ledger.Ledger) *Owner {
	return &Owner{
		Log:     log,
		Limiter: ratelimit.New(rateLimitOwner, rateBurstOwner),
		Ledger:  l,
	}
}

// Owner balance
// -------------

// BalanceArguments - arguments for Owner.Balance
type BalanceArguments struct {
	Owner account.Account `json:"owner"`
}

// BalanceReply - result of Owner.Balance
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - number of tokens held by an account
func (owner *Owner) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}
	reply.Balance = owner.Ledger.BalanceOf(storage.Committed, arguments.Owner)
	return nil
}

// Owner tokens
// ------------

// TokensArguments - arguments for Owner.Tokens
type TokensArguments struct {
	Owner account.Account `json:"owner"`
	Start *uint64         `json:"start,omitempty"` // first token; nil for the head of the list
	Count int             `json:"count"`
}

// TokensReply - result of Owner.Tokens
type TokensReply struct {
	Tokens []uint64 `json:"tokens"`
	Next   *uint64  `json:"next,omitempty"` // Start value for the next call; nil at the end
}

// Tokens - page through the tokens of an account in holding order
func (owner *Owner) Tokens(arguments *TokensArguments, reply *TokensReply) error {
	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumTokensCount); nil != err {
		return err
	}

	owner.Log.Debugf("Owner.Tokens: %+v", arguments)

	tokens, next, err := owner.Ledger.Index().ListTokensFor(storage.Committed, arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Tokens = tokens
	reply.Next = next
	return nil
}

// Owner operators
// ---------------

// OperatorArguments - arguments for Owner.IsApprovedForAll
type OperatorArguments struct {
	Owner    account.Account `json:"owner"`
	Operator account.Account `json:"operator"`
}

// OperatorReply - result of Owner.IsApprovedForAll
type OperatorReply struct {
	Approved bool `json:"approved"`
}

// IsApprovedForAll - whether operator may act for all of owner's tokens
func (owner *Owner) IsApprovedForAll(arguments *OperatorArguments, reply *OperatorReply) error {
	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}
	reply.Approved = owner.Ledger.IsApprovedForAll(storage.Committed, arguments.Owner, arguments.Operator)
	return nil
}
