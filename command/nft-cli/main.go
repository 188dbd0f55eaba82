// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/ed25519"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect    string
	privateKey ed25519.PrivateKey
	verbose    bool
	e          io.Writer
	w          io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "nft-cli"
	app.Usage = "nftd client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " nftd host/IP and port, `HOST:PORT`",
			EnvVar: "NFT_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " hex ed25519 private key seed `KEY`",
			EnvVar: "NFT_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new private key seed and show its account",
			Action: runGenerate,
		},
		{
			Name:   "account",
			Usage:  "show the account of the private key",
			Action: runAccount,
		},
		{
			Name:      "issue",
			Usage:     "issue a token carrying a payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, p",
					Value: "",
					Usage: "*payload text `STRING`",
				},
				cli.BoolFlag{
					Name:  "hex, x",
					Usage: " payload is hex encoded",
				},
			},
			Action: runIssue,
		},
		{
			Name:   "create",
			Usage:  "create a token with a random genome",
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "breed a child from two owned tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag("parent1, 1", "*first parent token `ID`"),
				tokenFlag("parent2, 2", "*second parent token `ID`"),
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a token to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag("token, t", "*token to transfer `ID`"),
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " current owner `ACCOUNT` [default: own account]",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the token `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "destroy a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag("token, t", "*token to burn `ID`"),
			},
			Action: runBurn,
		},
		{
			Name:      "approve",
			Usage:     "let a delegate transfer one token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag("token, t", "*token to delegate `ID`"),
				cli.StringFlag{
					Name:  "delegate, d",
					Value: "",
					Usage: "*delegate `ACCOUNT`",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "operator",
			Usage:     "grant or revoke an operator for all tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " revoke instead of grant",
				},
			},
			Action: runOperator,
		},
		{
			Name:      "get",
			Usage:     "show a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				tokenFlag("token, t", "*token `ID`"),
			},
			Action: runGet,
		},
		{
			Name:  "balance",
			Usage: "token count of an account",
			Flags: []cli.Flag{
				ownerFlag(),
			},
			Action: runBalance,
		},
		{
			Name:  "tokens",
			Usage: "list the tokens of an account",
			Flags: []cli.Flag{
				ownerFlag(),
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first token `ID` [default: head of list]",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum tokens to return `COUNT`",
				},
			},
			Action: runTokens,
		},
		{
			Name:  "is-operator",
			Usage: "check whether an account is an operator of an owner",
			Flags: []cli.Flag{
				ownerFlag(),
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ACCOUNT`",
				},
			},
			Action: runIsOperator,
		},
		{
			Name:  "events",
			Usage: "list committed events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first event `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum events to return `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:   "info",
			Usage:  "display nftd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display nft-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		m := &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if key := c.GlobalString("key"); "" != key {
			privateKey, err := privateKeyFromHex(key)
			if nil != err {
				return err
			}
			m.privateKey = privateKey
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s\n", m.connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}

func tokenFlag(name string, usage string) cli.Flag {
	return cli.StringFlag{
		Name:  name,
		Value: "",
		Usage: usage,
	}
}

func ownerFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " `ACCOUNT` to query [default: own account]",
	}
}
