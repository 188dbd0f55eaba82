// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {
	m := getMetadata(c)

	owner, err := checkAccountOrSelf(c, m, "owner")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runTokens(c *cli.Context) error {
	m := getMetadata(c)

	owner, err := checkAccountOrSelf(c, m, "owner")
	if nil != err {
		return err
	}

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var start *uint64
	if s := c.String("start"); "" != s {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return fmt.Errorf("invalid start: %q", s)
		}
		start = &n
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Tokens(owner, start, count)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runIsOperator(c *cli.Context) error {
	m := getMetadata(c)

	owner, err := checkAccountOrSelf(c, m, "owner")
	if nil != err {
		return err
	}
	operator, err := checkAccount(c, "operator")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.IsApprovedForAll(owner, operator)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runEvents(c *cli.Context) error {
	m := getMetadata(c)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Events(c.Uint64("start"), count)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}
