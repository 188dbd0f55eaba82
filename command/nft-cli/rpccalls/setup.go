// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/ed25519"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/rpc/origin"
)

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	privateKey ed25519.PrivateKey
	verbose    bool
	handle     io.Writer // if verbose is set output items here
	clock      func() time.Time
}

// NewClient - create a RPC connection to an nftd
//
// privateKey may be nil when only enquiries are made
func NewClient(connect string, privateKey ed25519.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	return newClient(conn, privateKey, verbose, handle), nil
}

func newClient(conn net.Conn, privateKey ed25519.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:       conn,
		client:     jsonrpc.NewClient(conn),
		privateKey: privateKey,
		verbose:    verbose,
		handle:     handle,
		clock:      time.Now,
	}
}

// Close - shutdown the nftd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Account - the account of the signing key
func (c *Client) Account() (account.Account, error) {
	if nil == c.privateKey {
		return account.Account{}, errNoKey
	}
	return account.FromBytes(c.privateKey.Public().(ed25519.PublicKey))
}

var errNoKey = errors.New("private key is required")

// sign a state changing request
func (c *Client) sign(method string, fields ...origin.Field) (origin.Request, error) {
	if nil == c.privateKey {
		return origin.Request{}, errNoKey
	}
	return origin.Sign(c.privateKey, method, c.clock(), fields...)
}

// call with verbose tracing of arguments and reply
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		return err
	}

	c.printJson(method+" Reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s: marshal error: %s\n", title, err)
		return
	}
	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
}
