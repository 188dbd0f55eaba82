// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single key/value database (LevelDB or Badger)
// split into a series of tables.  Each table is defined by a prefix
// byte that is obtained from the prefix tag in the struct defining the
// available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ⧺        = concatenation of byte data
// 3. tokenId  = big endian uint64 (8 bytes)
// 4. owner    = account (32 bytes)
// 5. count    = big endian uint64 (8 bytes)
// 6. sequence = big endian uint64 (8 bytes)
//
// Tokens:
//
//	G ⧺ tokenId                - token payload (genome for bred tokens)
//	                             data: opaque bytes
//	O ⧺ tokenId                - current owner
//	                             data: owner
//	A ⧺ tokenId                - approved delegate (absent = none)
//	                             data: account
//
// Owners:
//
//	B ⧺ owner                  - number of tokens held
//	                             data: count
//	P ⧺ owner ⧺ operator       - operator approval (absent = false)
//	                             data: 0x01
//	L ⧺ owner ⧺ 0x00           - owner list sentinel
//	                             data: packed node (prev = tail, next = head)
//	L ⧺ owner ⧺ 0x01 ⧺ tokenId - owner list element
//	                             data: packed node
//
// Counters:
//
//	C ⧺ "supply"               - total supply (count)
//	C ⧺ "nonce"                - ledger nonce (count)
//	C ⧺ "next-id"              - next token id to issue (count)
//	C ⧺ "selector"             - selector call counter (count)
//	C ⧺ "seed"                 - selector seed (32 bytes)
//	C ⧺ "event"                - next event sequence (count)
//
// Events:
//
//	E ⧺ sequence               - append only event log
//	                             data: packed event
//
// Testing:
//
//	Z ⧺ key                    - testing data
package storage
