// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !qnodedebug

package qnode

// ValidateLinks is false in release builds: no link-slot assertions.
const ValidateLinks = false

// CountAllocations is false in release builds: Pool.Allocated always
// reads 0 and allocation bookkeeping is skipped entirely.
const CountAllocations = false
