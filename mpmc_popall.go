// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

import (
	"code.hybscloud.com/spin"
)

// Stack is a lock-free, concurrent LIFO stack that provides Push,
// PushMultiple, and PopAll. There is no single-node Pop: PopAll is the
// only removal primitive, atomically swapping the entire chain out for
// nil.
//
// All methods may be called concurrently from any number of goroutines
// (this is the M in MPMC — push producers and PopAll consumers may both
// be many).
//
// Implemented as the "IBM freelist" LIFO: Push is a CAS loop that sets
// the incoming node's next slot to the observed top and then CASes top
// from old to new. The algorithm needs no ABA tag: PopAll always swaps
// in nil and never compares top against a remembered non-nil value, so
// the classic Treiber ABA hazard (a freed-and-reused pointer comparing
// equal to a stale observation) cannot arise. If a future version adds
// a single-node Pop, that property is lost and tagging becomes
// mandatory again.
type Stack[N any] struct {
	_   pad
	top AtomicLink[N]
	_   pad
	// next addresses each node's link slot. Fixed for the stack's
	// lifetime — the Go rendition of the C++ template's compile-time
	// slot index.
	next func(*N) *AtomicLink[N]
}

// NewStack creates an empty Stack over the link slot selected by next.
func NewStack[N any](next func(*N) *AtomicLink[N]) *Stack[N] {
	return &Stack[N]{next: next}
}

// Push inserts a single node at the top of the stack.
func (s *Stack[N]) Push(n *N) {
	s.push(n)
}

// PushReportEmpty is Push, additionally reporting whether the stack was
// empty immediately before this push — a hint callers can use to wake a
// sleeping consumer. See [MPSC]'s doc comment for why this hint can be
// misleading when a reversing buffer sits in front of the stack.
func (s *Stack[N]) PushReportEmpty(n *N) (wasEmpty bool) {
	top := s.push(n)
	return top == nil
}

// push is shared by Push and PushReportEmpty; it returns the
// previously-observed top (nil iff the stack was empty beforehand).
func (s *Stack[N]) push(n *N) *N {
	if ValidateLinks {
		checkUnlinkedAtomic(s.next(n))
	}
	sw := spin.Wait{}
	for {
		top := s.top.LoadAcquire()
		s.next(n).StoreRelaxed(top)
		// The CAS below publishes both n's payload writes (made by the
		// caller before Push) and the next-slot write above with
		// release ordering, so a concurrent PopAll's acquire exchange
		// observes them in full.
		if s.top.CompareAndSwapAcqRel(top, n) {
			return top
		}
		sw.Once()
	}
}

// PushMultiple atomically prepends a pre-linked chain running front to
// back (front.next eventually reaching back, back.next currently nil)
// onto the stack. back's link slot is overwritten with the previous
// top, so the whole chain becomes reachable from the new top in a
// single CAS.
func (s *Stack[N]) PushMultiple(front, back *N) {
	s.pushMultiple(front, back)
}

// PushMultipleReportEmpty is PushMultiple, additionally reporting
// whether the stack was empty beforehand.
func (s *Stack[N]) PushMultipleReportEmpty(front, back *N) (wasEmpty bool) {
	top := s.pushMultiple(front, back)
	return top == nil
}

func (s *Stack[N]) pushMultiple(front, back *N) *N {
	if ValidateLinks {
		checkUnlinkedAtomic(s.next(back))
	}
	sw := spin.Wait{}
	for {
		top := s.top.LoadAcquire()
		s.next(back).StoreRelaxed(top)
		if s.top.CompareAndSwapAcqRel(top, front) {
			return top
		}
		sw.Once()
	}
}

// Empty is a lock-free, advisory peek: the result may already be stale
// by the time the caller observes it.
func (s *Stack[N]) Empty() bool {
	return s.top.LoadRelaxed() == nil
}

// PopAll atomically removes and returns every node currently on the
// stack, as a LIFO chain (the most recently pushed node first). Returns
// nil if the stack was empty. The exchange uses acquire ordering,
// synchronizing with every push that has successfully CASed top before
// this call.
func (s *Stack[N]) PopAll() *N {
	return s.top.ExchangeAcquire(nil)
}
