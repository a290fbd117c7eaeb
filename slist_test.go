// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode_test

import (
	"math/rand"
	"testing"

	"github.com/coralbyte/qnode"
)

func slistValues(l *qnode.SList[node]) []int {
	var out []int
	for it := l.Begin(); it.Node() != nil; it = it.Next() {
		out = append(out, it.Node().val)
	}
	return out
}

func assertIntSlice(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSListPushFrontPopFrontRoundTrip(t *testing.T) {
	l := qnode.NewSList(sNext)
	ns := newNodes(1, 2, 3)

	for _, n := range ns {
		l.PushFront(n)
	}
	assertIntSlice(t, slistValues(l), []int{3, 2, 1})

	for _, want := range []int{3, 2, 1} {
		if l.Empty() {
			t.Fatal("unexpectedly empty")
		}
		got := l.PopFront()
		if got.val != want {
			t.Fatalf("PopFront() = %d, want %d", got.val, want)
		}
	}
	if !l.Empty() {
		t.Fatal("expected empty after draining")
	}
}

func TestSListSizePredicates(t *testing.T) {
	l := qnode.NewSList(sNext)
	ns := newNodes(1, 2)

	if !l.Empty() || l.SizeIs1() || l.SizeIsGreaterThan1() {
		t.Fatal("wrong predicates on empty list")
	}

	l.PushFront(ns[0])
	if l.Empty() || !l.SizeIs1() || l.SizeIsGreaterThan1() {
		t.Fatal("wrong predicates on size-1 list")
	}

	l.PushFront(ns[1])
	if l.Empty() || l.SizeIs1() || !l.SizeIsGreaterThan1() {
		t.Fatal("wrong predicates on size-2 list")
	}
}

func TestSListInsertAfterRemoveAfter(t *testing.T) {
	l := qnode.NewSList(sNext)
	ns := newNodes(1, 2, 3)

	l.PushFront(ns[0])        // [1]
	l.InsertAfter(ns[0], ns[2]) // [1,3]
	l.InsertAfter(ns[0], ns[1]) // [1,2,3]
	assertIntSlice(t, slistValues(l), []int{1, 2, 3})

	removed := l.RemoveAfter(ns[0])
	if removed != ns[1] {
		t.Fatalf("RemoveAfter returned wrong node")
	}
	assertIntSlice(t, slistValues(l), []int{1, 3})

	// RemoveAfter the last node returns nil.
	if got := l.RemoveAfter(ns[2]); got != nil {
		t.Fatalf("RemoveAfter(last) = %v, want nil", got)
	}
}

func TestSListRemoveByValue(t *testing.T) {
	l := qnode.NewSList(sNext)
	ns := newNodes(1, 2, 3)
	for i := len(ns) - 1; i >= 0; i-- {
		l.PushFront(ns[i])
	}
	if !l.Remove(ns[1]) {
		t.Fatal("Remove reported not found")
	}
	assertIntSlice(t, slistValues(l), []int{1, 3})
	if l.Remove(ns[1]) {
		t.Fatal("Remove reported found a node that is no longer a member")
	}
}

func TestSListSwap(t *testing.T) {
	a := qnode.NewSList(sNext)
	b := qnode.NewSList(sNext)
	ans := newNodes(1, 2)
	bns := newNodes(3)
	a.PushFront(ans[1])
	a.PushFront(ans[0])
	b.PushFront(bns[0])

	a.Swap(b)
	assertIntSlice(t, slistValues(a), []int{3})
	assertIntSlice(t, slistValues(b), []int{1, 2})
}

func TestSListRandomizedFuzz(t *testing.T) {
	l := qnode.NewSList(sNext)
	rng := rand.New(rand.NewSource(1))
	var model []*node
	pool := newNodes(rangeInts(100)...)
	outside := append([]*node{}, pool...)

	for step := 0; step < 200; step++ {
		insert := len(model) == 0 || (len(outside) > 0 && rng.Intn(2) == 0)
		if insert && len(outside) > 0 {
			n := outside[len(outside)-1]
			outside = outside[:len(outside)-1]
			l.PushFront(n)
			model = append([]*node{n}, model...)
		} else if len(model) > 0 {
			got := l.PopFront()
			if got != model[0] {
				t.Fatalf("step %d: PopFront mismatch", step)
			}
			model = model[1:]
			outside = append(outside, got)
		}

		if l.Empty() != (len(model) == 0) {
			t.Fatalf("step %d: Empty() mismatch", step)
		}
		if l.SizeIs1() != (len(model) == 1) {
			t.Fatalf("step %d: SizeIs1() mismatch", step)
		}
		if l.SizeIsGreaterThan1() != (len(model) > 1) {
			t.Fatalf("step %d: SizeIsGreaterThan1() mismatch", step)
		}

		got := slistValues(l)
		if len(got) != len(model) {
			t.Fatalf("step %d: length mismatch: got %d want %d", step, len(got), len(model))
		}
		for i := range got {
			if got[i] != model[i].val {
				t.Fatalf("step %d: traversal mismatch at %d", step, i)
			}
		}
	}
}

func rangeInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
