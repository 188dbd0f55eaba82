// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/nftd/account"
	"github.com/bitmark-inc/nftd/fault"
)

const (
	oneByteSize    = 1
	uint64ByteSize = 8
)

// structure of a packed node
const (
	flagsStart  = 0
	flagsFinish = flagsStart + oneByteSize

	prevStart  = flagsFinish
	prevFinish = prevStart + uint64ByteSize

	nextStart  = prevFinish
	nextFinish = nextStart + uint64ByteSize

	nodePackLength = nextFinish
)

// flag bits
const (
	hasPrev = 1 << iota
	hasNext
)

// key tags following the owner
const (
	sentinelTag = 0x00
	elementTag  = 0x01
)

// Node - links of one list entry; nil means None
type Node struct {
	Prev *uint64
	Next *uint64
}

// PackedNode - node as stored in the database
type PackedNode []byte

// Pack - flags ⧺ prev ⧺ next, absent links are zero filled
func (node Node) Pack() PackedNode {
	buffer := make(PackedNode, nodePackLength)
	if nil != node.Prev {
		buffer[flagsStart] |= hasPrev
		binary.BigEndian.PutUint64(buffer[prevStart:prevFinish], *node.Prev)
	}
	if nil != node.Next {
		buffer[flagsStart] |= hasNext
		binary.BigEndian.PutUint64(buffer[nextStart:nextFinish], *node.Next)
	}
	return buffer
}

// Unpack - decode a packed node
func (packed PackedNode) Unpack() (Node, error) {
	var node Node
	if nodePackLength != len(packed) {
		return node, fault.ErrInvalidNodePack
	}
	flags := packed[flagsStart]
	if 0 != flags&^(hasPrev|hasNext) {
		return node, fault.ErrInvalidNodePack
	}
	if 0 != flags&hasPrev {
		node.Prev = link(binary.BigEndian.Uint64(packed[prevStart:prevFinish]))
	}
	if 0 != flags&hasNext {
		node.Next = link(binary.BigEndian.Uint64(packed[nextStart:nextFinish]))
	}
	return node, nil
}

func link(tokenId uint64) *uint64 {
	return &tokenId
}

func sentinelKey(owner account.Account) []byte {
	key := make([]byte, 0, account.Length+oneByteSize)
	key = append(key, owner.Bytes()...)
	return append(key, sentinelTag)
}

func elementKey(owner account.Account, tokenId uint64) []byte {
	key := make([]byte, account.Length+oneByteSize+uint64ByteSize)
	copy(key, owner.Bytes())
	key[account.Length] = elementTag
	binary.BigEndian.PutUint64(key[account.Length+oneByteSize:], tokenId)
	return key
}
