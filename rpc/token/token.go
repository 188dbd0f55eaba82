// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/breeding"
	"github.com/bitmark-inc/nftd/engine"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/rpc/origin"
	"github.com/bitmark-inc/nftd/rpc/ratelimit"
	"github.com/bitmark-inc/nftd/storage"
)

// method names, also the signed method in each request
const (
	MethodIssue             = "Token.Issue"
	MethodCreate            = "Token.Create"
	MethodBreed             = "Token.Breed"
	MethodTransfer          = "Token.Transfer"
	MethodBurn              = "Token.Burn"
	MethodApprove           = "Token.Approve"
	MethodSetApprovalForAll = "Token.SetApprovalForAll"
	MethodGet               = "Token.Get"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for the RPC
type Token struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Transitions engine.Transitions
	Ledger      *ledger.Ledger
	Breeding    *breeding.Engine
	clock       func() time.Time
}

// New - create the token service
func New(log *logger.L, transitions engine.Transitions, l *ledger.Ledger, b *breeding.Engine) *Token {
	return &Token{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitToken, rateBurstToken),
		Transitions: transitions,
		Ledger:      l,
		Breeding:    b,
		clock:       time.Now,
	}
}

// IdReply - the token produced by a request
type IdReply struct {
	TokenId uint64           `json:"tokenId,string"`
	Genome  *breeding.Genome `json:"genome,omitempty"`
}

// StatusReply - result of a request that produces nothing
type StatusReply struct {
	Status string `json:"status"`
}

const statusOk = "ok"

// Token issue
// -----------

// IssueArguments - arguments for Token.Issue
type IssueArguments struct {
	origin.Request
	Payload []byte `json:"payload"`
}

// Issue - issue a token carrying payload to the caller
func (token *Token) Issue(arguments *IssueArguments, reply *IdReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodIssue, token.clock(), origin.Field(arguments.Payload))
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s  payload: %d bytes", MethodIssue, caller, len(arguments.Payload))

	tokenId, err := token.Transitions.Issue(caller, arguments.Payload)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	return nil
}

// Token create
// ------------

// CreateArguments - arguments for Token.Create
type CreateArguments struct {
	origin.Request
}

// Create - issue a token with a random genome to the caller
func (token *Token) Create(arguments *CreateArguments, reply *IdReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodCreate, token.clock())
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s", MethodCreate, caller)

	tokenId, genome, err := token.Transitions.Create(caller)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	reply.Genome = &genome
	return nil
}

// Token breed
// -----------

// BreedArguments - arguments for Token.Breed
type BreedArguments struct {
	origin.Request
	Parent1 uint64 `json:"parent1,string"`
	Parent2 uint64 `json:"parent2,string"`
}

// Breed - issue the child of two of the caller's tokens
func (token *Token) Breed(arguments *BreedArguments, reply *IdReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodBreed, token.clock(), origin.Uint64(arguments.Parent1), origin.Uint64(arguments.Parent2))
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s  parents: %d %d", MethodBreed, caller, arguments.Parent1, arguments.Parent2)

	tokenId, genome, err := token.Transitions.Breed(caller, arguments.Parent1, arguments.Parent2)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	reply.Genome = &genome
	return nil
}

// Token transfer
// --------------

// TransferArguments - arguments for Token.Transfer
type TransferArguments struct {
	origin.Request
	From    account.Account `json:"from"`
	To      account.Account `json:"to"`
	TokenId uint64          `json:"tokenId,string"`
}

// Transfer - move a token the caller may act for
func (token *Token) Transfer(arguments *TransferArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodTransfer, token.clock(),
		origin.Account(arguments.From),
		origin.Account(arguments.To),
		origin.Uint64(arguments.TokenId),
	)
	if nil != err {
		return err
	}
	if arguments.To.IsZero() {
		return fault.ErrInvalidAccount
	}

	token.Log.Infof("%s: caller: %s  token: %d  from: %s  to: %s", MethodTransfer, caller, arguments.TokenId, arguments.From, arguments.To)

	err = token.Transitions.Transfer(caller, arguments.From, arguments.To, arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Status = statusOk
	return nil
}

// Token burn
// ----------

// BurnArguments - arguments for Token.Burn
type BurnArguments struct {
	origin.Request
	TokenId uint64 `json:"tokenId,string"`
}

// Burn - destroy a token the caller may act for
func (token *Token) Burn(arguments *BurnArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodBurn, token.clock(), origin.Uint64(arguments.TokenId))
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s  token: %d", MethodBurn, caller, arguments.TokenId)

	err = token.Transitions.Burn(caller, arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Status = statusOk
	return nil
}

// Token approvals
// ---------------

// ApproveArguments - arguments for Token.Approve
type ApproveArguments struct {
	origin.Request
	Delegate account.Account `json:"delegate"`
	TokenId  uint64          `json:"tokenId,string"`
}

// Approve - let delegate transfer one of the caller's tokens
func (token *Token) Approve(arguments *ApproveArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodApprove, token.clock(), origin.Account(arguments.Delegate), origin.Uint64(arguments.TokenId))
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s  token: %d  delegate: %s", MethodApprove, caller, arguments.TokenId, arguments.Delegate)

	err = token.Transitions.Approve(caller, arguments.Delegate, arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Status = statusOk
	return nil
}

// SetApprovalForAllArguments - arguments for Token.SetApprovalForAll
type SetApprovalForAllArguments struct {
	origin.Request
	Operator account.Account `json:"operator"`
	Approved bool            `json:"approved"`
}

// SetApprovalForAll - set or clear an operator for all of the caller's tokens
func (token *Token) SetApprovalForAll(arguments *SetApprovalForAllArguments, reply *StatusReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	caller, err := arguments.Verify(MethodSetApprovalForAll, token.clock(), origin.Account(arguments.Operator), origin.Bool(arguments.Approved))
	if nil != err {
		return err
	}

	token.Log.Infof("%s: caller: %s  operator: %s  approved: %t", MethodSetApprovalForAll, caller, arguments.Operator, arguments.Approved)

	err = token.Transitions.SetApprovalForAll(caller, arguments.Operator, arguments.Approved)
	if nil != err {
		return err
	}
	reply.Status = statusOk
	return nil
}

// Token get
// ---------

// GetArguments - arguments for Token.Get
type GetArguments struct {
	TokenId uint64 `json:"tokenId,string"`
}

// GetReply - committed state of one token
type GetReply struct {
	TokenId  uint64           `json:"tokenId,string"`
	Owner    account.Account  `json:"owner"`
	Approved *account.Account `json:"approved,omitempty"`
	Payload  []byte           `json:"payload"`
	Genome   *breeding.Genome `json:"genome,omitempty"`
}

// Get - owner, approval and payload of a token
func (token *Token) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	owner, ok := token.Ledger.OwnerOf(storage.Committed, arguments.TokenId)
	if !ok {
		return fault.ErrNotFound
	}

	reply.TokenId = arguments.TokenId
	reply.Owner = owner
	if delegate, ok := token.Ledger.GetApproved(storage.Committed, arguments.TokenId); ok {
		reply.Approved = &delegate
	}
	reply.Payload = token.Ledger.PayloadOf(storage.Committed, arguments.TokenId)
	if genome, ok := token.Breeding.GenomeOf(storage.Committed, arguments.TokenId); ok {
		reply.Genome = &genome
	}
	return nil
}
