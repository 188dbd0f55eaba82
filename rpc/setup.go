// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/engine"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/messagebus"
	"github.com/bitmark-inc/nftd/rpc/certificate"
	"github.com/bitmark-inc/nftd/rpc/handler"
	"github.com/bitmark-inc/nftd/rpc/listeners"
	"github.com/bitmark-inc/nftd/rpc/node"
	"github.com/bitmark-inc/nftd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	connections counter.Counter
	listeners   []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, e *engine.Engine, bus *messagebus.BroadcastQueue) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &globalData.connections, e, bus)

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &globalData.connections, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if len(httpsConfiguration.Listen) > 0 {
		httpsTLS, httpsFingerprint, err := certificate.Get(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			closeListeners()
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		n := node.New(log, time.Now().UTC(), version, &globalData.connections, e.Ledger(), e.Events(), bus)
		h := handler.New(log, s, n, httpsConfiguration.MaximumConnections)

		httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, h)
		if nil != err {
			closeListeners()
			return err
		}
		err = httpsListener.Serve()
		if nil != err {
			closeListeners()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	closeListeners()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func closeListeners() {
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Warnf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil
}
