// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/nftd/counter"
	"github.com/bitmark-inc/nftd/event"
	"github.com/bitmark-inc/nftd/ledger"
	"github.com/bitmark-inc/nftd/rpc/fixtures"
	"github.com/bitmark-inc/nftd/rpc/handler"
	"github.com/bitmark-inc/nftd/rpc/node"
	"github.com/bitmark-inc/nftd/storage"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func setupLogger(t *testing.T) {
	fixtures.SetupTestLogger()
	t.Cleanup(fixtures.TeardownTestLogger)
}

func newHandler(maximumConnections uint64, n *node.Node) handler.Handler {
	s := rpc.NewServer()
	_ = s.Register(Add{})

	return handler.New(logger.New(fixtures.LogCategory), s, n, maximumConnections)
}

func allowLocal(h handler.Handler, name string) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	allow[name] = []*net.IPNet{ipNet}
	h.SetAllow(allow)
}

func decodeError(t *testing.T, resp *http.Response) eResp {
	var j eResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	return j
}

func TestRoot(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)

	add := AddArg{A: 1, B: 2}
	data, _ := json.Marshal(jReq{ID: 5, Method: "Add.Add", Params: []AddArg{add}})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w.Result()).Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	setupLogger(t)
	h := newHandler(0, nil)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w.Result())
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
	assert.Equal(t, http.StatusTooManyRequests, j.Code, "wrong code")
}

func TestRPCWhenServeError(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, "wrong status code")
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestDetails(t *testing.T) {
	setupLogger(t)
	fixtures.SetupStorage(t)

	l := ledger.New(ledger.PoolHandles(), ledger.Limits{}, nil, logger.New(fixtures.LogCategory))
	history := event.NewLog(storage.Pool.Events, storage.Pool.Counters)
	c := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), time.Now(), "1.0", &c, l, history, nil)

	h := newHandler(5, n)
	allowLocal(h, handler.AllowDetails)

	req := httptest.NewRequest("GET", "http://test.com/nftd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	resp := w.Result()
	var reply node.InfoReply
	_ = json.NewDecoder(resp.Body).Decode(&reply)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(0), reply.TotalSupply, "wrong supply")
}

func TestDetailsWhenNotAllowed(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)

	req := httptest.NewRequest("GET", "http://test.com/nftd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, "forbidden", decodeError(t, w.Result()).Error, "wrong not allow")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)
	allowLocal(h, handler.AllowDetails)

	req := httptest.NewRequest("POST", "http://test.com/nftd/details", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w.Result()).Error, "wrong method")
}

func TestMetrics(t *testing.T) {
	setupLogger(t)
	h := newHandler(5, nil)
	allowLocal(h, handler.AllowMetrics)

	req := httptest.NewRequest("GET", "http://test.com/metrics", nil)
	w := httptest.NewRecorder()
	h.Metrics(w, req)

	resp := w.Result()
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Contains(t, string(b), "go_goroutines", "wrong exposition")
}

func TestMetricsWhenTooManyConnections(t *testing.T) {
	setupLogger(t)
	h := newHandler(0, nil)
	allowLocal(h, handler.AllowMetrics)

	req := httptest.NewRequest("GET", "http://test.com/metrics", nil)
	w := httptest.NewRecorder()
	h.Metrics(w, req)

	assert.Equal(t, tooManyRequests, decodeError(t, w.Result()).Error, "wrong error")
}
