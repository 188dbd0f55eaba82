// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/rpc/node"
)

// access control names, used as keys of the allow map
const (
	AllowDetails = "details"
	AllowMetrics = "metrics"
)

// Handler - HTTPS endpoints
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	count              counter.Counter
	log                *logger.L
	server             *rpc.Server
	node               *node.Node
	metrics            http.Handler
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// New - create the HTTPS handler
func New(log *logger.L, server *rpc.Server, n *node.Node, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		node:               n,
		metrics:            promhttp.Handler(),
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - networks allowed to reach each restricted endpoint
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// to allow the rpc system to use a http request
type connection struct {
	in  io.Reader
	out io.Writer
}

func (c *connection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *connection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}

func (c *connection) Close() error {
	return nil
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.IncrementBelow(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	var out bytes.Buffer
	body := r.Body
	if nil == body {
		body = http.NoBody
	}
	codec := jsonrpc.NewServerCodec(&connection{in: body, out: &out})
	err := h.server.ServeRequest(codec)
	if nil != err {
		h.log.Warnf("rpc request error: %s", err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = out.WriteTo(w)
}

// Details - GET for the same response as the Node.Info RPC
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.permit(w, r, AllowDetails) {
		return
	}
	defer h.count.Decrement()

	var reply node.InfoReply
	err := h.node.Info(&node.InfoArguments{}, &reply)
	if nil != err {
		h.log.Errorf("details error: %s", err)
		sendInternalServerError(w)
		return
	}

	sendReply(w, reply)
}

// Metrics - prometheus exposition
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	if !h.permit(w, r, AllowMetrics) {
		return
	}
	defer h.count.Decrement()

	h.metrics.ServeHTTP(w, r)
}

// check method, access list and connection limit of a GET endpoint
//
// on true the caller must decrement the connection count
func (h *handler) permit(w http.ResponseWriter, r *http.Request, name string) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.allowed(r.RemoteAddr, name) {
		h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, name)
		sendForbidden(w)
		return false
	}

	if !h.count.IncrementBelow(h.maximumConnections) {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *handler) allowed(remoteAddr string, name string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, n := range h.allow[name] {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
