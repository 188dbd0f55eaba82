// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/rpc/events"
	"github.com/bitmark-inc/nftd/rpc/node"
	"github.com/bitmark-inc/nftd/rpc/owner"
)

// Balance - token count of an account
func (c *Client) Balance(who account.Account) (*owner.BalanceReply, error) {
	arguments := owner.BalanceArguments{
		Owner: who,
	}
	reply := &owner.BalanceReply{}
	if err := c.call("Owner.Balance", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Tokens - one page of an account's tokens
func (c *Client) Tokens(who account.Account, start *uint64, count int) (*owner.TokensReply, error) {
	arguments := owner.TokensArguments{
		Owner: who,
		Start: start,
		Count: count,
	}
	reply := &owner.TokensReply{}
	if err := c.call("Owner.Tokens", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// IsApprovedForAll - operator status
func (c *Client) IsApprovedForAll(who account.Account, operator account.Account) (*owner.OperatorReply, error) {
	arguments := owner.OperatorArguments{
		Owner:    who,
		Operator: operator,
	}
	reply := &owner.OperatorReply{}
	if err := c.call("Owner.IsApprovedForAll", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Events - one page of the event log
func (c *Client) Events(start uint64, count int) (*events.ListReply, error) {
	arguments := events.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &events.ListReply{}
	if err := c.call("Events.List", arguments, reply); nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - node status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	if err := c.call("Node.Info", node.InfoArguments{}, reply); nil != err {
		return nil, err
	}
	return reply, nil
}
