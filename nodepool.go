// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Pool is a lock-free, fixed-capacity node pool: a Treiber stack of
// pre-allocated T slots, addressed by a tagged (index, counter) word so
// a single 64-bit CAS suffices without double-width compare-and-swap.
// Allocate and Deallocate are both lock-free CAS-retry loops
// usable from any goroutine, including ones with real-time constraints.
//
// Unlike the design this is based on, free slots are not threaded
// through the raw bytes of T's own storage: Go's garbage collector
// requires memory behind a live T to always look like a valid T (or its
// zero value), so scribbling a free-list index into T's bytes while a
// GC scan might be in flight is unsound. Each slot instead carries its
// free-list "next" index in a dedicated field alongside T. The
// algorithm — tag/counter packing, ABA safety via a monotonically
// increasing counter, O(1) allocate/deallocate — is otherwise unchanged.
type Pool[T any] struct {
	_         pad
	top       atomix.Uint64 // packs (index, counter); index 0 means empty
	_         pad
	allocated atomix.Int64 // debug allocation counter, see CountAllocations
	_         pad
	slots     []poolSlot[T]
	maxNodes  uint32
}

type poolSlot[T any] struct {
	next  atomix.Uint64 // free-list next index+1 (0 = none); valid only while free
	value T
}

// packTop/unpackTop combine a 1-based slot index (0 meaning empty) and
// an ABA counter into the single atomic word Pool.top. Two successful
// pushes of the same index always differ in counter, so a CAS can never
// spuriously succeed against a stale observation.
func packTop(index, counter uint32) uint64 {
	return uint64(counter)<<32 | uint64(index)
}

func unpackTop(v uint64) (index, counter uint32) {
	return uint32(v), uint32(v >> 32)
}

// NewPool creates a Pool with the given fixed capacity. Panics if
// capacity is not positive or does not fit the pool's 32-bit index.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		panic("qnode: pool capacity must be > 0")
	}
	if uint64(capacity) >= 1<<32-1 {
		panic("qnode: pool capacity exceeds the maximum representable index")
	}

	p := &Pool[T]{
		slots:    alignedSlots[T](capacity),
		maxNodes: uint32(capacity),
	}
	for i := 0; i < capacity; i++ {
		if i+1 < capacity {
			p.slots[i].next.StoreRelaxed(uint64(i + 2)) // 1-based index of slot i+1
		} else {
			p.slots[i].next.StoreRelaxed(0)
		}
	}
	p.top.StoreRelaxed(packTop(1, 0))
	return p
}

// Cap returns the pool's fixed capacity.
func (p *Pool[T]) Cap() int { return int(p.maxNodes) }

// Allocated returns the current debug allocation count. Always 0 unless
// built with CountAllocations enabled.
func (p *Pool[T]) Allocated() int64 { return p.allocated.LoadRelaxed() }

// Allocate removes and returns a slot from the pool, or nil if the pool
// is exhausted. Exhaustion is an expected, recoverable condition: the
// caller must react (backpressure, shedding, a fallback allocator) —
// this is never a panic.
func (p *Pool[T]) Allocate() *T {
	sw := spin.Wait{}
	for {
		top := p.top.LoadAcquire()
		index, counter := unpackTop(top)
		if index == 0 {
			return nil
		}

		// Reading the next field of a slot whose ownership may change
		// between this observation and the CAS below is a known,
		// accepted caveat of this algorithm (see spec's design notes):
		// it relies on the pool's backing storage being type-stable for
		// the pool's lifetime, which holds here because Pool never
		// returns slot memory to the runtime.
		next := p.slots[index-1].next.LoadAcquire()

		newTop := packTop(uint32(next), counter+1)
		if p.top.CompareAndSwapAcqRel(top, newTop) {
			if CountAllocations {
				p.allocated.AddAcqRel(1)
			}
			return &p.slots[index-1].value
		}
		sw.Once()
	}
}

// Deallocate returns v to the pool. v must have been obtained from this
// pool and not already deallocated — passing any other pointer is a
// contract violation and is not checked.
func (p *Pool[T]) Deallocate(v *T) {
	idx := p.indexOf(v)

	var zero T
	p.slots[idx].value = zero

	sw := spin.Wait{}
	for {
		top := p.top.LoadAcquire()
		index, counter := unpackTop(top)
		p.slots[idx].next.StoreRelaxed(uint64(index))

		newTop := packTop(uint32(idx+1), counter+1)
		if p.top.CompareAndSwapAcqRel(top, newTop) {
			if CountAllocations {
				p.allocated.AddAcqRel(-1)
			}
			return
		}
		sw.Once()
	}
}

// indexOf recovers the 0-based slot index for a pointer returned by
// Allocate, via pointer arithmetic against the pool's contiguous
// backing storage. Safe because Go's non-moving GC never relocates
// p.slots's backing array for the pool's lifetime.
func (p *Pool[T]) indexOf(v *T) int {
	var probe poolSlot[T]
	valueOffset := unsafe.Offsetof(probe.value)
	slotAddr := uintptr(unsafe.Pointer(v)) - valueOffset

	base := uintptr(unsafe.Pointer(&p.slots[0]))
	size := unsafe.Sizeof(probe)
	return int((slotAddr - base) / size)
}

// alignedSlots allocates n poolSlot[T] values in one contiguous region.
// This is the Go rendition of the platform-specific aligned allocator
// the original design calls out as its one external collaborator: it
// over-allocates a typed []poolSlot[T] slice by cacheLine/size+1 slots,
// then starts the result at the last slot that does not pass the first
// cache-line boundary of the allocation. The result is cache-line
// aligned when the slot size divides the distance to that boundary (in
// particular when the allocation is already aligned); otherwise it
// begins up to one slot before the boundary and is not aligned.
//
// The backing array is allocated with its real element type
// ([]poolSlot[T], not []byte reinterpreted via unsafe.Slice): poolSlot[T]
// can embed T fields that hold real pointers (an intrusive Link or
// AtomicLink slot, for instance), and Go's GC decides whether an
// allocation is scanned for pointers at allocation time, from the
// declared element type. A []byte allocation is noscan and never
// revisited; reinterpreting it afterward would leave any pointer written
// into it invisible to the collector. Computing the aligned offset via
// unsafe.Pointer address arithmetic and then slicing the already
// correctly-typed raw slice avoids that trap entirely.
func alignedSlots[T any](n int) []poolSlot[T] {
	var probe poolSlot[T]
	size := unsafe.Sizeof(probe)

	slack := int(cacheLine/size) + 1
	raw := make([]poolSlot[T], n+slack)

	base := uintptr(unsafe.Pointer(&raw[0]))
	aligned := (base + cacheLine - 1) &^ (cacheLine - 1)
	skip := int((aligned - base) / size)

	return raw[skip : skip+n : skip+n]
}
