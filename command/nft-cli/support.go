// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/command/nft-cli/rpccalls"
)

// hex seed to private key
func privateKeyFromHex(s string) (ed25519.PrivateKey, error) {
	seed, err := hex.DecodeString(s)
	if nil != err {
		return nil, fmt.Errorf("invalid private key: %s", err)
	}
	if ed25519.SeedSize != len(seed) {
		return nil, fmt.Errorf("private key seed must be %d bytes", ed25519.SeedSize)
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

func accountOf(privateKey ed25519.PrivateKey) (account.Account, error) {
	return account.FromBytes(privateKey.Public().(ed25519.PublicKey))
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.privateKey, m.verbose, m.e)
}

// a required token id flag
func checkTokenId(c *cli.Context, name string) (uint64, error) {
	s := c.String(name)
	if "" == s {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return n, nil
}

// a required account flag
func checkAccount(c *cli.Context, name string) (account.Account, error) {
	s := c.String(name)
	if "" == s {
		return account.Account{}, fmt.Errorf("%s is required", name)
	}
	return account.FromBase58(s)
}

// an account flag defaulting to the key's account
func checkAccountOrSelf(c *cli.Context, m *metadata, name string) (account.Account, error) {
	if "" != c.String(name) {
		return account.FromBase58(c.String(name))
	}
	if nil == m.privateKey {
		return account.Account{}, fmt.Errorf("%s or key is required", name)
	}
	return accountOf(m.privateKey)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
