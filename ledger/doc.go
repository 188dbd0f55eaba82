// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - token ownership, balances, supply and approvals
//
// Every mutating operation runs inside a storage transaction and
// checks all of its preconditions before the first write, so a
// returned error means nothing was written.  Authorisation of the
// caller is not done here: TransferFrom trusts its from argument and
// Authorise is provided for the caller to use first.
package ledger
