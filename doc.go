// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package qnode provides intrusive, node-based, lock-free and
// single-threaded queue/list primitives for allocation-free message
// passing between goroutines.
//
// The package targets real-time, low-latency systems (audio engines,
// request/response servers, worker pools) where allocating on the hot
// path is forbidden and producer/consumer goroutines must hand off work
// without blocking. Every container described here is intrusive: the
// client's node type carries its own link slots, so inserting a node
// into a container never allocates.
//
// # Components
//
// Eight pieces, leaf-first:
//
//	Link / AtomicLink  - plain and atomic link-slot types
//	SList               - singly-linked list, O(1) push/pop front
//	STailList           - singly-linked list with O(1) push back
//	DList               - doubly-linked list, bidirectional iteration
//	Stack               - lock-free MPMC pop-all LIFO stack
//	MPSC                - lock-free multi-producer single-consumer FIFO
//	SPSCUR              - lock-free SPSC unordered result queue
//	Pool                - lock-free fixed-capacity node pool
//
// Stack is the foundation: MPSC is built from a Stack plus a consumer-
// private reversing buffer (kept in the same atomic link slot, not an
// STailList) that turns captured LIFO batches into FIFO order.
// Pool supplies the nodes that flow through any of the above.
//
// # Quick start
//
// A node type declares its own link slots and a selector function that
// tells a container which slot to use:
//
//	type Job struct {
//	    Payload int
//	    next    qnode.AtomicLink[Job]
//	}
//
//	func jobNext(j *Job) *qnode.AtomicLink[Job] { return &j.next }
//
//	stack := qnode.NewStack(jobNext)
//	stack.Push(&Job{Payload: 1})
//	stack.Push(&Job{Payload: 2})
//	chain := stack.PopAll() // -> Job{2} -> Job{1} -> nil
//
// A single node type may declare several slots (one per container it
// participates in across its lifetime — e.g. a "queued" slot and a
// "replying" slot) as long as it is only ever a member of one container
// at a time. See [AtomicLink] and [Link].
//
// # Ownership
//
// A node is owned by exactly one container, or by the caller's hand,
// at any instant; push/pop transfer ownership. Containers never copy or
// free node storage — they only read and write link slots. Clients are
// responsible for node lifetime; [Pool] is the supplied answer for
// allocation-free node lifetime management.
//
// # Concurrency
//
// Stack, MPSC, SPSCUR, and Pool are lock-free and safe under concurrent
// use within the access pattern their name implies (documented on each
// type). SList, STailList, and DList are not thread-safe and must be
// confined to a single goroutine or externally synchronized.
//
// None of the operations in this package block, wait, or spin
// indefinitely. Empty/full conditions are reported by returning a nil
// node pointer (for pops) or by the caller checking capacity before a
// push — there is no error type in this package, because every expected
// "nothing to do" condition already has a nil-pointer representation.
//
// # Race detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe happens-before relationships established purely through
// acquire/release orderings on otherwise-unrelated memory locations.
// Some stress tests in this package are excluded under the race detector
// via //go:build !race for this reason; see [RaceEnabled].
//
// # Dependencies
//
// This package uses code.hybscloud.com/atomix for atomic primitives with
// explicit memory ordering and code.hybscloud.com/spin for CPU pause
// instructions in CAS retry loops.
package qnode
