// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/rpc/origin"
	"github.com/bitmark-inc/nftd/rpc/token"
)

// Issue - new token carrying payload
func (c *Client) Issue(payload []byte) (*token.IdReply, error) {
	request, err := c.sign(token.MethodIssue, origin.Field(payload))
	if nil != err {
		return nil, err
	}
	arguments := token.IssueArguments{
		Request: request,
		Payload: payload,
	}
	reply := &token.IdReply{}
	if err := c.call(token.MethodIssue, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Create - new token with a random genome
func (c *Client) Create() (*token.IdReply, error) {
	request, err := c.sign(token.MethodCreate)
	if nil != err {
		return nil, err
	}
	arguments := token.CreateArguments{
		Request: request,
	}
	reply := &token.IdReply{}
	if err := c.call(token.MethodCreate, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Breed - child of two owned tokens
func (c *Client) Breed(parent1 uint64, parent2 uint64) (*token.IdReply, error) {
	request, err := c.sign(token.MethodBreed, origin.Uint64(parent1), origin.Uint64(parent2))
	if nil != err {
		return nil, err
	}
	arguments := token.BreedArguments{
		Request: request,
		Parent1: parent1,
		Parent2: parent2,
	}
	reply := &token.IdReply{}
	if err := c.call(token.MethodBreed, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move a token from one account to another
func (c *Client) Transfer(from account.Account, to account.Account, tokenId uint64) (*token.StatusReply, error) {
	request, err := c.sign(token.MethodTransfer, origin.Account(from), origin.Account(to), origin.Uint64(tokenId))
	if nil != err {
		return nil, err
	}
	arguments := token.TransferArguments{
		Request: request,
		From:    from,
		To:      to,
		TokenId: tokenId,
	}
	reply := &token.StatusReply{}
	if err := c.call(token.MethodTransfer, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Burn - destroy a token
func (c *Client) Burn(tokenId uint64) (*token.StatusReply, error) {
	request, err := c.sign(token.MethodBurn, origin.Uint64(tokenId))
	if nil != err {
		return nil, err
	}
	arguments := token.BurnArguments{
		Request: request,
		TokenId: tokenId,
	}
	reply := &token.StatusReply{}
	if err := c.call(token.MethodBurn, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Approve - set the single delegate of a token
func (c *Client) Approve(delegate account.Account, tokenId uint64) (*token.StatusReply, error) {
	request, err := c.sign(token.MethodApprove, origin.Account(delegate), origin.Uint64(tokenId))
	if nil != err {
		return nil, err
	}
	arguments := token.ApproveArguments{
		Request:  request,
		Delegate: delegate,
		TokenId:  tokenId,
	}
	reply := &token.StatusReply{}
	if err := c.call(token.MethodApprove, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// SetApprovalForAll - grant or revoke an operator
func (c *Client) SetApprovalForAll(operator account.Account, approved bool) (*token.StatusReply, error) {
	request, err := c.sign(token.MethodSetApprovalForAll, origin.Account(operator), origin.Bool(approved))
	if nil != err {
		return nil, err
	}
	arguments := token.SetApprovalForAllArguments{
		Request:  request,
		Operator: operator,
		Approved: approved,
	}
	reply := &token.StatusReply{}
	if err := c.call(token.MethodSetApprovalForAll, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Get - token details
func (c *Client) Get(tokenId uint64) (*token.GetReply, error) {
	arguments := token.GetArguments{
		TokenId: tokenId,
	}
	reply := &token.GetReply{}
	if err := c.call(token.MethodGet, arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
