// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - per owner enumeration of tokens
//
// Each owner has a doubly linked list of token ids stored as point
// records in the OwnerList pool, so insertion and removal only touch a
// constant number of keys and never scan the pool.
//
//	L ⧺ owner ⧺ 0x00           - sentinel: prev = tail, next = head
//	L ⧺ owner ⧺ 0x01 ⧺ tokenId - element: prev, next (None at the ends)
//
// An emptied list keeps its sentinel with both links None.
package ownership
