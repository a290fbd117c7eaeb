// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// SPSCUR is a lock-free, single-producer single-consumer "unordered
// result" queue. It is typically embedded inside a request node the
// consumer allocated, so the consumer can dispatch a request and later
// collect its reply through the same object.
//
// Delivery is explicitly not FIFO: batches captured by a single pop
// from the shared LIFO are drained in LIFO order. That is the design,
// not an oversight — when the consumer only needs to know that every
// outstanding reply eventually arrives (replies carry their own
// identity), LIFO-within-a-batch is strictly cheaper than reconstructing
// FIFO order the way [MPSC] does.
//
// Every Push on the producer happens-before the corresponding Pop on
// the consumer; beyond that, no ordering between distinct replies is
// promised.
type SPSCUR[N any] struct {
	_    pad
	top  AtomicLink[N] // shared by producer Push and consumer Pop's capture step
	_    pad
	next func(*N) *AtomicLink[N]

	// consumer-only state; never touched by the producer.
	head                *N
	expectedResultCount int64
}

// NewSPSCUR creates an empty SPSCUR over the link slot selected by next.
func NewSPSCUR[N any](next func(*N) *AtomicLink[N]) *SPSCUR[N] {
	return &SPSCUR[N]{next: next}
}

// Push adds n to the queue. Producer-only; must not be called
// concurrently with itself (there is exactly one producer).
func (q *SPSCUR[N]) Push(n *N) {
	if ValidateLinks {
		checkUnlinkedAtomic(q.next(n))
	}

	top := q.top.LoadRelaxed()
	q.next(n).StoreRelaxed(top)

	// This CAS normally succeeds on the first try. Because there is
	// only one producer, the only way it can fail is the consumer
	// concurrently exchanging top for nil in its capture step — so on
	// failure, top is now nil and a plain relaxed store suffices; the
	// consumer's next acquire exchange is what establishes the
	// happens-before edge, not this store's ordering.
	if q.top.CompareAndSwapAcqRel(top, n) {
		return
	}
	q.next(n).StoreRelaxed(nil)
	q.top.StoreRelaxed(n)
}

// Pop removes and returns one node, in no particular order relative to
// other replies, or nil if none are available. Consumer-only.
func (q *SPSCUR[N]) Pop() *N {
	if q.head == nil {
		// Poll passively first to avoid unconditionally taking the
		// exchange's bus-locking cost when nothing is there.
		if q.top.LoadRelaxed() == nil {
			return nil
		}
		result := q.top.ExchangeAcquire(nil)
		if result == nil {
			return nil
		}
		q.head = q.next(result).LoadRelaxed()
		if ValidateLinks {
			q.next(result).StoreRelaxed(nil)
		}
		q.decrementExpected()
		return result
	}

	result := q.head
	q.head = q.next(result).LoadRelaxed()
	if ValidateLinks {
		q.next(result).StoreRelaxed(nil)
	}
	q.decrementExpected()
	return result
}

func (q *SPSCUR[N]) decrementExpected() {
	if q.expectedResultCount <= 0 {
		panic("qnode: SPSCUR popped more results than expected")
	}
	q.expectedResultCount--
}

// ExpectedResultCount returns the number of outstanding replies the
// consumer expects. Consumer-only.
func (q *SPSCUR[N]) ExpectedResultCount() int64 { return q.expectedResultCount }

// IncrementExpectedResultCount increments the expected-reply count by k
// (default 1 via IncrementExpectedResultCount(1)). The consumer calls
// this when dispatching a request; Pop decrements it on every
// successful return. Consumer-only.
func (q *SPSCUR[N]) IncrementExpectedResultCount(k int64) {
	q.expectedResultCount += k
}
