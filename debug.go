// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build qnodedebug

package qnode

// ValidateLinks is true when link-slot validation is compiled in:
// insertion asserts that the incoming node's relevant slots are nil,
// and removal nils them out on exit. Enable with -tags qnodedebug.
const ValidateLinks = true

// CountAllocations is true when Pool tracks a debug allocation counter
// via Pool.Allocated. Enable with -tags qnodedebug.
const CountAllocations = true
