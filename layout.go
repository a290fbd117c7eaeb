// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// cacheLine is the assumed cache line size in bytes, used to pad and
// align hot atomic fields and pool storage. A runtime query is a
// possible future extension; for now it is a compile-time constant.
const cacheLine = 64

// pad is cache line padding placed between independently-hot atomic
// fields to prevent false sharing.
type pad [cacheLine]byte
