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

// Index - the owner lists in a single pool
type Index struct {
	pool storage.Handle
}

// New - create an index over the given pool
func New(pool storage.Handle) *Index {
	return &Index{
		pool: pool,
	}
}

// Append - add a token as the new tail of an owner's list
//
// the token must not already be in the list
func (index *Index) Append(trx storage.Transaction, owner account.Account, tokenId uint64) error {
	sentinel, found, err := index.getNode(trx, sentinelKey(owner))
	if nil != err {
		return err
	}

	if !found {
		index.putNode(trx, sentinelKey(owner), Node{Prev: link(tokenId), Next: link(tokenId)})
		index.putNode(trx, elementKey(owner, tokenId), Node{})
		return nil
	}

	oldTail := sentinel.Prev

	var tail Node
	if nil != oldTail {
		tail, found, err = index.getNode(trx, elementKey(owner, *oldTail))
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrOwnershipIndexCorrupt
		}
	}

	sentinel.Prev = link(tokenId)
	if nil == oldTail {
		sentinel.Next = link(tokenId)
	} else {
		tail.Next = link(tokenId)
		index.putNode(trx, elementKey(owner, *oldTail), tail)
	}
	index.putNode(trx, sentinelKey(owner), sentinel)
	index.putNode(trx, elementKey(owner, tokenId), Node{Prev: oldTail})
	return nil
}

// CheckAppend - verify that an owner's list can take a new tail
//
// only reads, so a caller can validate the list before any other write
func (index *Index) CheckAppend(reader storage.Reader, owner account.Account) error {
	sentinel, found, err := index.getNode(reader, sentinelKey(owner))
	if nil != err {
		return err
	}
	if !found || nil == sentinel.Prev {
		return nil
	}
	if !reader.Has(index.pool, elementKey(owner, *sentinel.Prev)) {
		return fault.ErrOwnershipIndexCorrupt
	}
	return nil
}

// Remove - unlink a token from an owner's list
//
// all neighbours are read before anything is written, so an error
// leaves the list untouched
func (index *Index) Remove(trx storage.Transaction, owner account.Account, tokenId uint64) error {
	node, found, err := index.getNode(trx, elementKey(owner, tokenId))
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrTokenNotIndexed
	}

	sentinel, found, err := index.getNode(trx, sentinelKey(owner))
	if nil != err {
		return err
	}
	if !found {
		return fault.ErrOwnershipIndexCorrupt
	}

	p := node.Prev
	n := node.Next

	var prevNode, nextNode Node
	if nil != p {
		prevNode, found, err = index.getNode(trx, elementKey(owner, *p))
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrOwnershipIndexCorrupt
		}
	}
	if nil != n {
		nextNode, found, err = index.getNode(trx, elementKey(owner, *n))
		if nil != err {
			return err
		}
		if !found {
			return fault.ErrOwnershipIndexCorrupt
		}
	}

	if nil == p {
		sentinel.Next = n
	} else {
		prevNode.Next = n
		index.putNode(trx, elementKey(owner, *p), prevNode)
	}

	if nil == n {
		sentinel.Prev = p
	} else {
		nextNode.Prev = p
		index.putNode(trx, elementKey(owner, *n), nextNode)
	}

	if nil == p || nil == n {
		index.putNode(trx, sentinelKey(owner), sentinel)
	}

	trx.Delete(index.pool, elementKey(owner, tokenId))
	return nil
}

// Contains - check if a token is in an owner's list
func (index *Index) Contains(reader storage.Reader, owner account.Account, tokenId uint64) bool {
	return reader.Has(index.pool, elementKey(owner, tokenId))
}

// Tokens - the whole of an owner's list, head first
func (index *Index) Tokens(reader storage.Reader, owner account.Account) ([]uint64, error) {
	tokens := make([]uint64, 0)
	iter := index.Iterate(reader, owner)
	for {
		tokenId, ok := iter.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tokenId)
	}
	return tokens, iter.Err()
}

func (index *Index) getNode(reader storage.Reader, key []byte) (Node, bool, error) {
	packed := reader.Get(index.pool, key)
	if nil == packed {
		return Node{}, false, nil
	}
	node, err := PackedNode(packed).Unpack()
	if nil != err {
		return Node{}, false, err
	}
	return node, true, nil
}

func (index *Index) putNode(trx storage.Transaction, key []byte, node Node) {
	trx.Put(index.pool, key, node.Pack())
}
