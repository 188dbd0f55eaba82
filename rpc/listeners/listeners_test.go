// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/rpc/certificate"
	"github.com/bitmark-inc/nftd/rpc/fixtures"
	"github.com/bitmark-inc/nftd/rpc/handler"
	"github.com/bitmark-inc/nftd/rpc/listeners"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func setup(t *testing.T) (*rpc.Server, *tls.Config) {
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)

	s := rpc.NewServer()
	require.Nil(t, s.Register(Add{}), "register")

	cer, key := fixtures.CertificatePair(t)
	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "certificate")
	return s, tlsConfig
}

func TestRPCListenerServe(t *testing.T) {
	s, tlsConfig := setup(t)

	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
	}
	count := counter.Counter(0)

	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, tlsConfig, [32]byte{})
	require.Nil(t, err, "wrong NewRPC")
	require.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	addresses := l.Addresses()
	require.Equal(t, 1, len(addresses), "wrong addresses")

	c, err := tls.Dial("tcp", addresses[0].String(), &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")

	client := jsonrpc.NewClient(c)
	defer client.Close()

	arg := AddArg{A: 2, B: 5}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "wrong connection count")
}

func TestRPCListenerErrors(t *testing.T) {
	s, tlsConfig := setup(t)
	log := logger.New(fixtures.LogCategory)
	count := counter.Counter(0)

	_, err := listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:0"},
	}, log, &count, s, tlsConfig, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections")

	_, err = listeners.NewRPC(&listeners.RPCConfiguration{
		MaximumConnections: 1,
	}, log, &count, s, tlsConfig, [32]byte{})
	assert.Equal(t, fault.ErrMissingParameters, err, "empty listen")

	for _, address := range []string{"localhost:2130", "1.2.3:2130", "127.0.0.1"} {
		_, err = listeners.NewRPC(&listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{address},
		}, log, &count, s, tlsConfig, [32]byte{})
		assert.Equal(t, fault.ErrInvalidIpAddress, err, "address: %q", address)
	}

	for _, address := range []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"} {
		_, err = listeners.NewRPC(&listeners.RPCConfiguration{
			MaximumConnections: 1,
			Listen:             []string{address},
		}, log, &count, s, tlsConfig, [32]byte{})
		assert.Nil(t, err, "address: %q", address)
	}
}

func TestHTTPSListenerServe(t *testing.T) {
	s, tlsConfig := setup(t)
	log := logger.New(fixtures.LogCategory)

	con := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Allow: map[string][]string{
			handler.AllowMetrics: {"192.0.2.0/24"},
		},
	}

	l, err := listeners.NewHTTPS(&con, log, tlsConfig, handler.New(log, s, nil, 5))
	require.Nil(t, err, "wrong NewHTTPS")
	require.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	base := "https://" + l.Addresses()[0].String()

	request, _ := json.Marshal(map[string]interface{}{
		"id":     1,
		"method": "Add.Add",
		"params": []AddArg{{A: 3, B: 4}},
	})
	resp, err := client.Post(base+"/nftd/rpc", "application/json", bytes.NewReader(request))
	require.Nil(t, err, "post")
	var reply struct {
		Result int `json:"result"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	_ = resp.Body.Close()
	assert.Equal(t, 7, reply.Result, "wrong rpc result")

	// loopback is not in the metrics allow list
	resp, err = client.Get(base + "/metrics")
	require.Nil(t, err, "get")
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "wrong status: %s", body)
}

func TestHTTPSListenerDisabled(t *testing.T) {
	s, tlsConfig := setup(t)
	log := logger.New(fixtures.LogCategory)

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, log, tlsConfig, handler.New(log, s, nil, 5))
	assert.Nil(t, err, "wrong NewHTTPS")
	assert.Nil(t, l, "listener created")

	_, err = listeners.NewHTTPS(&listeners.HTTPSConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"127.0.0.1:0"},
		Allow: map[string][]string{
			handler.AllowDetails: {"not a network"},
		},
	}, log, tlsConfig, handler.New(log, s, nil, 5))
	assert.NotNil(t, err, "invalid allow accepted")
}
