// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
	"github.com/bitmark-inc/nftd/storage"
)

// Iterator - lazy walk of an owner's list from head to tail
type Iterator struct {
	index   *Index
	reader  storage.Reader
	owner   account.Account
	started bool
	cursor  *uint64
	err     error
}

// Iterate - start a walk over an owner's list
//
// an owner with no list gives an empty sequence
func (index *Index) Iterate(reader storage.Reader, owner account.Account) *Iterator {
	return &Iterator{
		index:  index,
		reader: reader,
		owner:  owner,
	}
}

// Next - the next token id, false at the end of the list or on error
func (iter *Iterator) Next() (uint64, bool) {
	if nil != iter.err {
		return 0, false
	}

	if !iter.started {
		iter.started = true
		sentinel, found, err := iter.index.getNode(iter.reader, sentinelKey(iter.owner))
		if nil != err {
			iter.err = err
			return 0, false
		}
		if !found {
			return 0, false
		}
		iter.cursor = sentinel.Next
	}

	if nil == iter.cursor {
		return 0, false
	}

	tokenId := *iter.cursor
	node, found, err := iter.index.getNode(iter.reader, elementKey(iter.owner, tokenId))
	if nil != err {
		iter.err = err
		return 0, false
	}
	if !found {
		iter.err = fault.ErrOwnershipIndexCorrupt
		return 0, false
	}

	iter.cursor = node.Next
	return tokenId, true
}

// Reset - restart from the current head
func (iter *Iterator) Reset() {
	iter.started = false
	iter.cursor = nil
	iter.err = nil
}

// Err - error that stopped the walk
func (iter *Iterator) Err() error {
	return iter.err
}
