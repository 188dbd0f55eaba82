// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/nftd/account"
)

const testKey = "1111111111111111111111111111111111111111111111111111111111111111"

func run(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var out, e bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &e
	err := app.Run(append([]string{"nft-cli"}, args...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "version output")
}

func TestGenerateAndAccount(t *testing.T) {
	out, err := run(t, "generate")
	require.Nil(t, err, "generate")

	var generated accountReply
	require.Nil(t, json.Unmarshal([]byte(out), &generated), "generate output")
	require.Equal(t, 64, len(generated.Seed), "seed length")

	out, err = run(t, "--key", generated.Seed, "account")
	require.Nil(t, err, "account")

	var shown accountReply
	require.Nil(t, json.Unmarshal([]byte(out), &shown), "account output")
	assert.Equal(t, generated.Account, shown.Account, "same account")
	assert.Equal(t, "", shown.Seed, "seed not shown")
}

func TestAccountFromKey(t *testing.T) {
	privateKey, err := privateKeyFromHex(testKey)
	require.Nil(t, err, "key")

	expected, err := account.FromBytes(privateKey[32:])
	require.Nil(t, err, "public key")

	a, err := accountOf(privateKey)
	require.Nil(t, err, "accountOf")
	assert.Equal(t, expected, a, "account")
}

func TestArgumentErrors(t *testing.T) {
	_, err := run(t, "--key", "zz", "account")
	assert.NotNil(t, err, "bad hex key")

	_, err = run(t, "--key", "1111", "account")
	require.NotNil(t, err, "short key")
	assert.True(t, strings.Contains(err.Error(), "32 bytes"), "short key message")

	_, err = run(t, "account")
	assert.NotNil(t, err, "missing key")

	_, err = run(t, "--key", testKey, "burn")
	require.NotNil(t, err, "missing token")
	assert.Equal(t, "token is required", err.Error(), "missing token message")

	_, err = run(t, "--key", testKey, "get", "--token", "x")
	assert.NotNil(t, err, "bad token id")

	_, err = run(t, "--key", testKey, "approve", "--token", "1")
	require.NotNil(t, err, "missing delegate")
	assert.Equal(t, "delegate is required", err.Error(), "missing delegate message")

	_, err = run(t, "tokens")
	require.NotNil(t, err, "tokens without owner")
	assert.Equal(t, "owner or key is required", err.Error(), "owner message")

	_, err = run(t, "--key", testKey, "events", "--count", "0")
	assert.NotNil(t, err, "zero count")
}
