// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftd/account"
)

type accountReply struct {
	Seed    string          `json:"seed,omitempty"`
	Account account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {
	m := getMetadata(c)

	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return err
	}

	a, err := accountOf(ed25519.NewKeyFromSeed(seed))
	if nil != err {
		return err
	}

	return printJson(m.w, accountReply{
		Seed:    hex.EncodeToString(seed),
		Account: a,
	})
}

func runAccount(c *cli.Context) error {
	m := getMetadata(c)

	if nil == m.privateKey {
		return fmt.Errorf("key is required")
	}
	a, err := accountOf(m.privateKey)
	if nil != err {
		return err
	}
	return printJson(m.w, accountReply{Account: a})
}
