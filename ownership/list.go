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

// ListTokensFor - fetch a page of an owner's tokens
//
// start nil begins at the head; the second result is the token to
// pass as start for the following page, nil when the list is done
func (index *Index) ListTokensFor(reader storage.Reader, owner account.Account, start *uint64, count int) ([]uint64, *uint64, error) {
	if count <= 0 {
		return nil, nil, fault.ErrInvalidCount
	}

	cursor := start
	if nil == cursor {
		sentinel, found, err := index.getNode(reader, sentinelKey(owner))
		if nil != err {
			return nil, nil, err
		}
		if !found {
			return []uint64{}, nil, nil
		}
		cursor = sentinel.Next
	} else if !index.Contains(reader, owner, *cursor) {
		return nil, nil, fault.ErrTokenNotIndexed
	}

	tokens := make([]uint64, 0, count)
	for nil != cursor && len(tokens) < count {
		node, found, err := index.getNode(reader, elementKey(owner, *cursor))
		if nil != err {
			return nil, nil, err
		}
		if !found {
			return nil, nil, fault.ErrOwnershipIndexCorrupt
		}
		tokens = append(tokens, *cursor)
		cursor = node.Next
	}
	return tokens, cursor, nil
}
