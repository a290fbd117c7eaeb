// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// DList is a single-threaded, intrusive, doubly-linked list: O(1)
// push/pop at both ends and O(1) insert/remove given a node reference.
//
// Unlike the C++ original this is derived from, DList does not alias
// its own front/back fields as a "before-front" sentinel — Go has no
// safe way to reinterpret a struct field as a node pointer. Instead nil
// simply means "no node here", and DList.Swap needs no sentinel
// re-anchoring after exchanging front/back (a correctness hazard the
// sentinel design is explicitly prone to — see spec's design notes).
//
// Not safe for concurrent use.
type DList[N any] struct {
	next, prev  func(*N) *Link[N]
	front, back *N
}

// NewDList creates an empty DList over the two link slots selected by
// next and prev.
func NewDList[N any](next, prev func(*N) *Link[N]) *DList[N] {
	return &DList[N]{next: next, prev: prev}
}

// Empty reports whether the list has no elements.
func (l *DList[N]) Empty() bool { return l.front == nil }

// SizeIs1 reports whether the list has exactly one element.
func (l *DList[N]) SizeIs1() bool { return l.front != nil && l.front == l.back }

// SizeIsGreaterThan1 reports whether the list has two or more elements.
func (l *DList[N]) SizeIsGreaterThan1() bool { return l.front != nil && l.front != l.back }

// Front returns the first node, or nil if empty.
func (l *DList[N]) Front() *N { return l.front }

// Back returns the last node, or nil if empty.
func (l *DList[N]) Back() *N { return l.back }

func (l *DList[N]) checkFresh(n *N) {
	if ValidateLinks {
		checkUnlinked(l.next(n))
		checkUnlinked(l.prev(n))
	}
}

// PushFront inserts n at the front of the list.
func (l *DList[N]) PushFront(n *N) {
	l.checkFresh(n)
	l.next(n).Store(l.front)
	l.prev(n).Store(nil)
	if l.front != nil {
		l.prev(l.front).Store(n)
	} else {
		l.back = n
	}
	l.front = n
}

// PushBack inserts n at the back of the list.
func (l *DList[N]) PushBack(n *N) {
	l.checkFresh(n)
	l.prev(n).Store(l.back)
	l.next(n).Store(nil)
	if l.back != nil {
		l.next(l.back).Store(n)
	} else {
		l.front = n
	}
	l.back = n
}

func (l *DList[N]) unlink(n *N) {
	p := l.prev(n).Load()
	nx := l.next(n).Load()
	if p != nil {
		l.next(p).Store(nx)
	} else {
		l.front = nx
	}
	if nx != nil {
		l.prev(nx).Store(p)
	} else {
		l.back = p
	}
	if ValidateLinks {
		l.next(n).Store(nil)
		l.prev(n).Store(nil)
	}
}

// PopFront removes and returns the front node. Contract violation if
// the list is empty.
func (l *DList[N]) PopFront() *N {
	n := l.front
	l.unlink(n)
	return n
}

// PopBack removes and returns the back node. Contract violation if the
// list is empty.
func (l *DList[N]) PopBack() *N {
	n := l.back
	l.unlink(n)
	return n
}

// Insert inserts n immediately before at. A nil at inserts at the back,
// equivalent to PushBack.
func (l *DList[N]) Insert(at, n *N) {
	if at == nil {
		l.PushBack(n)
		return
	}
	l.checkFresh(n)
	p := l.prev(at).Load()
	l.next(n).Store(at)
	l.prev(n).Store(p)
	l.prev(at).Store(n)
	if p != nil {
		l.next(p).Store(n)
	} else {
		l.front = n
	}
}

// Remove removes n from the list. n must currently be a member of l.
func (l *DList[N]) Remove(n *N) { l.unlink(n) }

// Clear empties the list. In debug builds every node's link slots are
// nilled as it is removed.
func (l *DList[N]) Clear() {
	if ValidateLinks {
		for n := l.front; n != nil; {
			next := l.next(n).Load()
			l.next(n).Store(nil)
			l.prev(n).Store(nil)
			n = next
		}
	}
	l.front = nil
	l.back = nil
}

// Swap exchanges the contents of l and o in O(1). No sentinel
// re-anchoring is required (see DList's doc comment).
func (l *DList[N]) Swap(o *DList[N]) {
	l.front, o.front = o.front, l.front
	l.back, o.back = o.back, l.back
}

// DListIterator is a bidirectional iterator over a DList. A zero-value
// cur of nil represents the past-the-end position; Prev from End yields
// Back, and Next from End stays at End.
type DListIterator[N any] struct {
	list *DList[N]
	cur  *N
}

// Begin returns an iterator positioned at the front of the list.
func (l *DList[N]) Begin() DListIterator[N] { return DListIterator[N]{list: l, cur: l.front} }

// End returns the past-the-end iterator.
func (l *DList[N]) End() DListIterator[N] { return DListIterator[N]{list: l, cur: nil} }

// Node returns the node the iterator refers to, or nil at End.
func (it DListIterator[N]) Node() *N { return it.cur }

// Next returns the iterator advanced one position.
func (it DListIterator[N]) Next() DListIterator[N] {
	if it.cur == nil {
		return it
	}
	return DListIterator[N]{list: it.list, cur: it.list.next(it.cur).Load()}
}

// Prev returns the iterator stepped back one position. Prev from End()
// yields an iterator at Back().
func (it DListIterator[N]) Prev() DListIterator[N] {
	if it.cur == nil {
		return DListIterator[N]{list: it.list, cur: it.list.back}
	}
	return DListIterator[N]{list: it.list, cur: it.list.prev(it.cur).Load()}
}

// Erase removes the node it refers to and returns an iterator to the
// next element.
func (l *DList[N]) Erase(it DListIterator[N]) DListIterator[N] {
	n := it.cur
	next := l.next(n).Load()
	l.unlink(n)
	return DListIterator[N]{list: l, cur: next}
}
