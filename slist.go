// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// SList is a single-threaded, intrusive, singly-linked list. Push/pop at
// the front and insert/remove after a given node are O(1); Remove by
// node value and Clear are O(n).
//
// The zero value is not usable; construct with NewSList. SList is not
// safe for concurrent use — confine it to one goroutine or synchronize
// externally.
type SList[N any] struct {
	next  func(*N) *Link[N]
	front *N
}

// NewSList creates an empty SList over the link slot selected by next.
func NewSList[N any](next func(*N) *Link[N]) *SList[N] {
	return &SList[N]{next: next}
}

// Empty reports whether the list has no elements.
func (l *SList[N]) Empty() bool { return l.front == nil }

// SizeIs1 reports whether the list has exactly one element.
func (l *SList[N]) SizeIs1() bool {
	return l.front != nil && l.next(l.front).Load() == nil
}

// SizeIsGreaterThan1 reports whether the list has two or more elements.
func (l *SList[N]) SizeIsGreaterThan1() bool {
	return l.front != nil && l.next(l.front).Load() != nil
}

// Front returns the first node, or nil if the list is empty.
func (l *SList[N]) Front() *N { return l.front }

// PushFront inserts n at the front of the list.
//
// In debug builds (ValidateLinks), n's link slot must already be nil.
func (l *SList[N]) PushFront(n *N) {
	if ValidateLinks {
		checkUnlinked(l.next(n))
	}
	l.next(n).Store(l.front)
	l.front = n
}

// PopFront removes and returns the front node. It is a contract
// violation to call PopFront on an empty list — check Empty first.
func (l *SList[N]) PopFront() *N {
	n := l.front
	l.front = l.next(n).Load()
	if ValidateLinks {
		l.next(n).Store(nil)
	}
	return n
}

// InsertAfter inserts n immediately after prev. A nil prev means insert
// at the front, equivalent to PushFront.
func (l *SList[N]) InsertAfter(prev, n *N) {
	if prev == nil {
		l.PushFront(n)
		return
	}
	if ValidateLinks {
		checkUnlinked(l.next(n))
	}
	l.next(n).Store(l.next(prev).Load())
	l.next(prev).Store(n)
}

// RemoveAfter removes and returns the node after prev, or nil if prev
// is the last node. A nil prev removes and returns the front node (nil
// if the list is empty), equivalent to PopFront but nil-safe.
func (l *SList[N]) RemoveAfter(prev *N) *N {
	if prev == nil {
		if l.front == nil {
			return nil
		}
		return l.PopFront()
	}
	n := l.next(prev).Load()
	if n == nil {
		return nil
	}
	l.next(prev).Store(l.next(n).Load())
	if ValidateLinks {
		l.next(n).Store(nil)
	}
	return n
}

// Clear empties the list. In debug builds every removed node's link
// slot is nilled.
func (l *SList[N]) Clear() {
	if ValidateLinks {
		for n := l.front; n != nil; {
			next := l.next(n).Load()
			l.next(n).Store(nil)
			n = next
		}
	}
	l.front = nil
}

// Swap exchanges the contents of l and o in O(1).
func (l *SList[N]) Swap(o *SList[N]) {
	l.front, o.front = o.front, l.front
}

// Remove searches l for n and removes it, in O(n). Reports whether n
// was found. This is the free-function Remove from spec.md, realized as
// a method for discoverability.
func (l *SList[N]) Remove(n *N) bool {
	if l.front == n {
		l.PopFront()
		return true
	}
	prev := l.front
	for prev != nil {
		next := l.next(prev).Load()
		if next == n {
			l.RemoveAfter(prev)
			return true
		}
		prev = next
	}
	return false
}

// SListIterator is a forward, single-pass iterator over an SList.
type SListIterator[N any] struct {
	list *SList[N]
	cur  *N
}

// Begin returns an iterator positioned at the front of the list.
func (l *SList[N]) Begin() SListIterator[N] { return SListIterator[N]{list: l, cur: l.front} }

// End returns the past-the-end iterator.
func (l *SList[N]) End() SListIterator[N] { return SListIterator[N]{list: l, cur: nil} }

// Node returns the node the iterator currently refers to, or nil at End.
func (it SListIterator[N]) Node() *N { return it.cur }

// Next advances the iterator and returns the result; it does not
// mutate it in place, matching value-iterator semantics.
func (it SListIterator[N]) Next() SListIterator[N] {
	if it.cur == nil {
		return it
	}
	return SListIterator[N]{list: it.list, cur: it.list.next(it.cur).Load()}
}

// EraseAfter removes the node after prev (nil meaning the front) and
// returns an iterator to the node that is now in that position.
func (l *SList[N]) EraseAfter(prev *N) SListIterator[N] {
	l.RemoveAfter(prev)
	if prev == nil {
		return l.Begin()
	}
	return SListIterator[N]{list: l, cur: l.next(prev).Load()}
}

// checkUnlinked panics (in debug builds only — callers gate on
// ValidateLinks) if slot is not nil, catching an attempt to insert an
// already-linked node into a second container.
func checkUnlinked[N any](slot *Link[N]) {
	if slot.Load() != nil {
		panic("qnode: node is already linked into a container")
	}
}

// checkUnlinkedAtomic is the atomic-slot counterpart of checkUnlinked,
// used by the concurrent containers.
func checkUnlinkedAtomic[N any](slot *AtomicLink[N]) {
	if slot.LoadRelaxed() != nil {
		panic("qnode: node is already linked into a container")
	}
}
