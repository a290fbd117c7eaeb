// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode

// STailList is a single-threaded, intrusive, singly-linked list that
// additionally tracks its tail, giving O(1) PushBack.
//
// Not safe for concurrent use.
type STailList[N any] struct {
	next        func(*N) *Link[N]
	front, back *N
}

// NewSTailList creates an empty STailList over the link slot selected
// by next.
func NewSTailList[N any](next func(*N) *Link[N]) *STailList[N] {
	return &STailList[N]{next: next}
}

// Empty reports whether the list has no elements.
func (l *STailList[N]) Empty() bool { return l.front == nil }

// SizeIs1 reports whether the list has exactly one element.
func (l *STailList[N]) SizeIs1() bool { return l.front != nil && l.front == l.back }

// SizeIsGreaterThan1 reports whether the list has two or more elements.
func (l *STailList[N]) SizeIsGreaterThan1() bool { return l.front != nil && l.front != l.back }

// Front returns the first node, or nil if empty.
func (l *STailList[N]) Front() *N { return l.front }

// Back returns the last node, or nil if empty.
func (l *STailList[N]) Back() *N { return l.back }

// PushFront inserts n at the front of the list.
func (l *STailList[N]) PushFront(n *N) {
	if ValidateLinks {
		checkUnlinked(l.next(n))
	}
	l.next(n).Store(l.front)
	if l.front == nil {
		l.back = n
	}
	l.front = n
}

// PushBack inserts n at the back of the list.
func (l *STailList[N]) PushBack(n *N) {
	if ValidateLinks {
		checkUnlinked(l.next(n))
	}
	l.next(n).Store(nil)
	if l.back != nil {
		l.next(l.back).Store(n)
	} else {
		l.front = n
	}
	l.back = n
}

// PopFront removes and returns the front node. Contract violation if
// the list is empty.
func (l *STailList[N]) PopFront() *N {
	n := l.front
	l.front = l.next(n).Load()
	if l.front == nil {
		l.back = nil
	}
	if ValidateLinks {
		l.next(n).Store(nil)
	}
	return n
}

// InsertAfter inserts n immediately after prev. A nil prev inserts at
// the front.
func (l *STailList[N]) InsertAfter(prev, n *N) {
	if prev == nil {
		l.PushFront(n)
		return
	}
	if ValidateLinks {
		checkUnlinked(l.next(n))
	}
	l.next(n).Store(l.next(prev).Load())
	l.next(prev).Store(n)
	if prev == l.back {
		l.back = n
	}
}

// RemoveAfter removes and returns the node after prev, or nil if prev
// is the last node. A nil prev removes the front node (nil if empty).
func (l *STailList[N]) RemoveAfter(prev *N) *N {
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
	if n == l.back {
		l.back = prev
	}
	if ValidateLinks {
		l.next(n).Store(nil)
	}
	return n
}

// Clear empties the list.
func (l *STailList[N]) Clear() {
	if ValidateLinks {
		for n := l.front; n != nil; {
			next := l.next(n).Load()
			l.next(n).Store(nil)
			n = next
		}
	}
	l.front = nil
	l.back = nil
}

// Swap exchanges the contents of l and o in O(1).
func (l *STailList[N]) Swap(o *STailList[N]) {
	l.front, o.front = o.front, l.front
	l.back, o.back = o.back, l.back
}

// STailListIterator is a forward, single-pass iterator over an STailList.
type STailListIterator[N any] struct {
	list *STailList[N]
	cur  *N
}

// Begin returns an iterator positioned at the front of the list.
func (l *STailList[N]) Begin() STailListIterator[N] {
	return STailListIterator[N]{list: l, cur: l.front}
}

// End returns the past-the-end iterator.
func (l *STailList[N]) End() STailListIterator[N] { return STailListIterator[N]{list: l, cur: nil} }

// Node returns the node the iterator refers to, or nil at End.
func (it STailListIterator[N]) Node() *N { return it.cur }

// Next advances the iterator and returns the result.
func (it STailListIterator[N]) Next() STailListIterator[N] {
	if it.cur == nil {
		return it
	}
	return STailListIterator[N]{list: it.list, cur: it.list.next(it.cur).Load()}
}

// EraseAfter removes the node after prev and returns an iterator to
// whatever now occupies that position.
func (l *STailList[N]) EraseAfter(prev *N) STailListIterator[N] {
	l.RemoveAfter(prev)
	if prev == nil {
		return l.Begin()
	}
	return STailListIterator[N]{list: l, cur: l.next(prev).Load()}
}
