// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
)

func runIssue(c *cli.Context) error {
	m := getMetadata(c)

	payload := []byte(c.String("payload"))
	if c.Bool("hex") {
		p, err := hex.DecodeString(string(payload))
		if nil != err {
			return fmt.Errorf("invalid hex payload: %s", err)
		}
		payload = p
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payload: %d bytes\n", len(payload))
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Issue(payload)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runCreate(c *cli.Context) error {
	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create()
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runBreed(c *cli.Context) error {
	m := getMetadata(c)

	parent1, err := checkTokenId(c, "parent1")
	if nil != err {
		return err
	}
	parent2, err := checkTokenId(c, "parent2")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Breed(parent1, parent2)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runTransfer(c *cli.Context) error {
	m := getMetadata(c)

	tokenId, err := checkTokenId(c, "token")
	if nil != err {
		return err
	}
	from, err := checkAccountOrSelf(c, m, "from")
	if nil != err {
		return err
	}
	to, err := checkAccount(c, "receiver")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %d  from: %s  to: %s\n", tokenId, from, to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(from, to, tokenId)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runBurn(c *cli.Context) error {
	m := getMetadata(c)

	tokenId, err := checkTokenId(c, "token")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Burn(tokenId)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runApprove(c *cli.Context) error {
	m := getMetadata(c)

	tokenId, err := checkTokenId(c, "token")
	if nil != err {
		return err
	}
	delegate, err := checkAccount(c, "delegate")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approve(delegate, tokenId)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runOperator(c *cli.Context) error {
	m := getMetadata(c)

	operator, err := checkAccount(c, "operator")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetApprovalForAll(operator, !c.Bool("revoke"))
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {
	m := getMetadata(c)

	tokenId, err := checkTokenId(c, "token")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Get(tokenId)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}
