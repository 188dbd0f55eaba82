// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - typed error values shared by every package
//
// each error is a single comparable value; the type groups errors by
// class (exists, invalid, not found, overflow, permission, process) so
// the RPC layer can report a category without string matching.
package fault
