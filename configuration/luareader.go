// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/unityvault/unityvaultd/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the results to a configuration structure
//
// variables are made available to the script as the global table
// "arg", arg[0] is the file name
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	if info, err := os.Stat(fileName); nil != err || info.IsDir() {
		return fault.ConfigurationFileNotFound
	}

	L := newState(fileName, variables)
	defer L.Close()

	if err := L.DoFile(fileName); err != nil {
		return err
	}
	return mapResult(L, config)
}

// ParseConfigurationString - as ParseConfigurationFile but the
// script is supplied directly
func ParseConfigurationString(script string, config interface{}, variables map[string]string) error {
	L := newState("", variables)
	defer L.Close()

	if err := L.DoString(script); err != nil {
		return err
	}
	return mapResult(L, config)
}

func newState(fileName string, variables map[string]string) *lua.LState {
	L := lua.NewState()
	L.OpenLibs()

	arg := &lua.LTable{}
	arg.RawSetInt(0, lua.LString(fileName))
	for k, v := range variables {
		arg.RawSetString(k, lua.LString(v))
	}
	L.SetGlobal("arg", arg)
	return L
}

func mapResult(L *lua.LState, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.MissingParameters
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
