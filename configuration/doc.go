// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is an ordinary Lua chunk that must return a single table.
// The full base library is open so os.getenv and string functions are
// usable; read_file(name) returns the contents of a file relative to
// the directory holding the configuration, or nil if it is missing.
package configuration
