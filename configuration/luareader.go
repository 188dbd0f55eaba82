// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// TagName - struct tag consulted when mapping the returned table
const TagName = "gluamapper"

// ParseConfigurationFile - execute a Lua file and map the table it
// returns onto config
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	L.SetGlobal("read_file", L.NewFunction(readFile(filepath.Dir(fileName))))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: TagName,
		},
	}
	return mapper.Map(table, config)
}

// read_file(name) → string | nil
func readFile(directory string) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		if !filepath.IsAbs(name) {
			name = filepath.Join(directory, name)
		}
		data, err := os.ReadFile(name)
		if nil != err {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(data))
		return 1
	}
}
