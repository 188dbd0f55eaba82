// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - point reads against either committed data or an open
// transaction
type Reader interface {
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
}

type committedReader struct{}

// Committed - reader that only sees committed data
var Committed Reader = committedReader{}

func (committedReader) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (committedReader) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (committedReader) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
