// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network front ends for the rpc server
package listeners

// Listener - start accepting connections in the background
type Listener interface {
	Serve() error
}
