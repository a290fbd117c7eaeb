// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package qnode

// RaceEnabled is true when the race detector is active.
// Used by tests to skip multi-goroutine stress tests for Stack, MPSC,
// SPSCUR, and Pool, which trigger false positives because the race detector
// cannot observe happens-before relationships established purely
// through acquire/release atomics on unrelated memory.
const RaceEnabled = true
