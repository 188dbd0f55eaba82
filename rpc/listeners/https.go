// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"-"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log       *logger.L
	networks  []string
	listen    []string
	tlsConfig *tls.Config
	server    *http.Server
	listeners []net.Listener
}

// NewHTTPS - HTTPS listeners for the JSON-RPC, details and metrics
// endpoints; nil when no listen address is configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	networks, listen, err := parseListenAddress(log, configuration.Listen)
	if nil != err {
		return nil, err
	}

	// access control by path
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				log.Errorf("%s: allow: %q error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(local)

	mux := http.NewServeMux()
	mux.HandleFunc("/nftd/rpc", hdlr.RPC)
	mux.HandleFunc("/nftd/details", hdlr.Details)
	mux.HandleFunc("/metrics", hdlr.Metrics)
	mux.HandleFunc("/", hdlr.Root)

	tlsConfig = tlsConfig.Clone()
	tlsConfig.NextProtos = []string{"http/1.1"}

	return &httpsListener{
		log:       log,
		networks:  networks,
		listen:    listen,
		tlsConfig: tlsConfig,
		server: &http.Server{
			Handler:        mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}, nil
}

// Serve - start serving on every address
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listen {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)
		l, err := net.Listen(h.networks[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}
		h.listeners = append(h.listeners, l)

		go func() {
			err := h.server.Serve(tls.NewListener(l, h.tlsConfig))
			h.log.Infof("%s terminated: %s", httpsLogName, err)
		}()
	}
	return nil
}

// Addresses - bound addresses, available after Serve
func (h *httpsListener) Addresses() []net.Addr {
	h.Lock()
	defer h.Unlock()

	addresses := make([]net.Addr, 0, len(h.listeners))
	for _, l := range h.listeners {
		addresses = append(addresses, l.Addr())
	}
	return addresses
}

// Close - stop the server and all of its listeners
func (h *httpsListener) Close() error {
	return h.server.Close()
}
