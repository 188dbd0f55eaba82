// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/fault"
)

const minConnectionCount = 1

// Listener - a set of network listeners for one service
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close() error
}

// split listen addresses into network type and address
//
//	"*:PORT"      tcp on every interface
//	"[IP6]:PORT"  tcp6
//	"IP4:PORT"    tcp4
func parseListenAddress(log *logger.L, addresses []string) ([]string, []string, error) {
	networks := make([]string, len(addresses))
	listen := make([]string, len(addresses))
	for i, address := range addresses {
		host, port, err := net.SplitHostPort(strings.TrimSpace(address))
		if nil != err {
			log.Errorf("listen: %q error: %s", address, err)
			return nil, nil, fault.ErrInvalidIpAddress
		}

		switch {
		case "*" == host:
			networks[i] = "tcp"
			host = "::"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if nil == net.ParseIP(host) {
			log.Errorf("listen: %q error: %s", address, fault.ErrInvalidIpAddress)
			return nil, nil, fault.ErrInvalidIpAddress
		}
		listen[i] = net.JoinHostPort(host, port)
	}
	return networks, listen, nil
}
