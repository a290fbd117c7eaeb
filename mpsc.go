// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// MPSC is a lock-free multi-producer single-consumer FIFO queue, built
// from a [Stack] (the producer-shared MPMC pop-all LIFO) plus a
// consumer-private reversing buffer. Producers push onto the shared
// Stack; the consumer periodically drains it with PopAll and walks the
// LIFO chain once to rebuild FIFO order, amortizing the cost of that one
// atomic exchange across every item it captured.
//
// The reversing buffer reuses the same link slot producers use — a node
// is only ever in the shared stack or in the consumer-private buffer,
// never both at once, so there is no need for a second slot.
//
// Producer push operations preserve per-producer order; order across
// producers follows the linearization order of their CAS successes on
// the shared stack's top, which in practice means "near-FIFO" with
// inversions bounded to items pushed within a single drain window.
type MPSC[N any] struct {
	stack *Stack[N]
	next  func(*N) *AtomicLink[N]

	// bufFront/bufBack are the consumer-private reversing buffer, never
	// touched by a producer.
	bufFront, bufBack *N
}

// NewMPSC creates an empty MPSC queue over the link slot selected by
// next.
func NewMPSC[N any](next func(*N) *AtomicLink[N]) *MPSC[N] {
	return &MPSC[N]{stack: NewStack(next), next: next}
}

// Push adds n to the queue. Safe from any number of producer goroutines.
func (q *MPSC[N]) Push(n *N) { q.stack.Push(n) }

// PushReportEmpty is Push, additionally reporting whether the shared
// stack was empty immediately before this push.
//
// Known limitation, carried forward from the design this is based on:
// wasEmpty reflects only the producer-shared stack, not the consumer's
// reversing buffer, and may read true even while the buffer still holds
// undelivered items. A caller using this as a "wake the consumer"
// signal must tolerate extra wake-ups, and must never treat wasEmpty ==
// true as proof the consumer had nothing else queued: wasEmpty == false
// does show undelivered items, but wasEmpty == true says nothing about
// the buffer. This is documented, not "fixed": a fix would change the
// wake-up contract existing callers may depend on.
func (q *MPSC[N]) PushReportEmpty(n *N) (wasEmpty bool) {
	return q.stack.PushReportEmpty(n)
}

// PushMultiple atomically pushes a pre-linked chain (front to back).
// The chain is delivered as if its nodes had been pushed one at a time
// from back to front: Pop returns back first and front last.
func (q *MPSC[N]) PushMultiple(front, back *N) { q.stack.PushMultiple(front, back) }

// PushMultipleReportEmpty is PushMultiple, with the same wasEmpty
// caveat as PushReportEmpty.
func (q *MPSC[N]) PushMultipleReportEmpty(front, back *N) (wasEmpty bool) {
	return q.stack.PushMultipleReportEmpty(front, back)
}

// ConsumerEmpty reports whether there is nothing left to Pop: the
// reversing buffer is empty and the shared stack appears empty. Unlike
// wasEmpty above, this consults both, and is the correct check for "is
// there any work left" on the consumer side.
func (q *MPSC[N]) ConsumerEmpty() bool {
	return q.bufFront == nil && q.stack.Empty()
}

// Pop removes and returns the next node in FIFO order, or nil if none
// is available. Consumer-only; must not be called concurrently with
// itself.
func (q *MPSC[N]) Pop() *N {
	if q.bufFront != nil {
		n := q.bufFront
		q.bufFront = q.next(n).LoadRelaxed()
		if q.bufFront == nil {
			q.bufBack = nil
		}
		if ValidateLinks {
			q.next(n).StoreRelaxed(nil)
		}
		return n
	}

	if q.stack.Empty() {
		return nil
	}

	chain := q.stack.PopAll()
	if chain == nil {
		return nil
	}

	// chain is in LIFO order (most recently pushed first). Walk it,
	// pushing every node but the last onto the front of the reversing
	// buffer — each push-to-front undoes one step of the reversal — and
	// return the last node, which is the oldest of the batch and
	// therefore next in FIFO order.
	n := chain
	for {
		next := q.next(n).LoadRelaxed()
		if next == nil {
			return n
		}
		q.next(n).StoreRelaxed(q.bufFront)
		if q.bufFront == nil {
			q.bufBack = n
		}
		q.bufFront = n
		n = next
	}
}
