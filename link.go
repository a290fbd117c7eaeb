// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

import "code.hybscloud.com/atomix"

// Link is a single-threaded link slot embedded in a node type N. It
// holds either a reference to another node or nil. Containers that are
// not thread-safe (SList, STailList, DList) use Link slots.
//
// A node may declare several Link/AtomicLink fields to participate in
// several containers over its lifetime, provided it is a member of at
// most one container at any instant (see package doc).
type Link[N any] struct {
	next *N
}

// Load returns the node currently referenced by the slot, or nil.
func (l *Link[N]) Load() *N { return l.next }

// Store sets the slot to reference n, or nil.
func (l *Link[N]) Store(n *N) { l.next = n }

// AtomicLink is a link slot accessed concurrently by lock-free
// containers (Stack, MPSC, SPSCUR). It must never be accessed through
// the non-atomic Link methods, and a plain Link must never be accessed
// concurrently — mixing the two access modes on the same slot is
// undefined behavior, per spec.
type AtomicLink[N any] struct {
	next atomix.Pointer[N]
}

// LoadAcquire loads the slot with acquire ordering.
func (l *AtomicLink[N]) LoadAcquire() *N { return l.next.LoadAcquire() }

// LoadRelaxed loads the slot with relaxed ordering. The result may be
// stale; callers must tolerate that (e.g. Stack.Empty's advisory peek).
func (l *AtomicLink[N]) LoadRelaxed() *N { return l.next.LoadRelaxed() }

// StoreRelease stores n into the slot with release ordering.
func (l *AtomicLink[N]) StoreRelease(n *N) { l.next.StoreRelease(n) }

// StoreRelaxed stores n into the slot with relaxed ordering. Only safe
// when no other party can be observing the slot at the same time (e.g.
// a single producer publishing before any CAS that exposes the node).
func (l *AtomicLink[N]) StoreRelaxed(n *N) { l.next.StoreRelaxed(n) }

// CompareAndSwapAcqRel performs a CAS with release ordering on success
// and relaxed ordering on failure.
func (l *AtomicLink[N]) CompareAndSwapAcqRel(old, new *N) bool {
	return l.next.CompareAndSwapAcqRel(old, new)
}

// ExchangeAcquire atomically stores new and returns the previous value, with
// acquire ordering (used by PopAll and SPSCUR's capture step).
func (l *AtomicLink[N]) ExchangeAcquire(new *N) *N {
	return l.next.SwapAcquire(new)
}
