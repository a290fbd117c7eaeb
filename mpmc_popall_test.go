// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode_test

import (
	"sync"
	"testing"
	"time"

	"github.com/coralbyte/qnode"
)

func chainValues(n *node, next func(*node) *qnode.AtomicLink[node]) []int {
	var out []int
	for n != nil {
		out = append(out, n.val)
		n = next(n).LoadRelaxed()
	}
	return out
}

func TestStackPushPopAllLIFOOrder(t *testing.T) {
	s := qnode.NewStack(aNextSel)
	ns := newNodes(1, 2, 3, 4) // a, b, c, d

	if !s.Empty() {
		t.Fatal("new stack should be empty")
	}
	for _, n := range ns {
		s.Push(n)
	}
	if s.Empty() {
		t.Fatal("stack should not be empty after pushes")
	}

	chain := s.PopAll()
	assertIntSlice(t, chainValues(chain, aNextSel), []int{4, 3, 2, 1})
	if !s.Empty() {
		t.Fatal("stack should be empty after PopAll")
	}
	if got := s.PopAll(); got != nil {
		t.Fatal("PopAll on an empty stack should return nil")
	}
}

func TestStackPushReportEmpty(t *testing.T) {
	s := qnode.NewStack(aNextSel)
	ns := newNodes(1, 2)

	if wasEmpty := s.PushReportEmpty(ns[0]); !wasEmpty {
		t.Fatal("first push should report the stack was empty")
	}
	if wasEmpty := s.PushReportEmpty(ns[1]); wasEmpty {
		t.Fatal("second push should report the stack was not empty")
	}
}

func TestStackPushMultipleThenPopAll(t *testing.T) {
	s := qnode.NewStack(aNextSel)

	// Build chain x -> y -> z (front=x, back=z) and push it as one unit,
	// then push a second two-node chain w -> w' the same way; PushMultiple
	// takes front..back already linked via aNext with back.next==nil.
	xyz := newNodes(24, 25, 26) // x, y, z
	aNextSel(xyz[0]).StoreRelaxed(xyz[1])
	aNextSel(xyz[1]).StoreRelaxed(xyz[2])
	aNextSel(xyz[2]).StoreRelaxed(nil)
	s.PushMultiple(xyz[0], xyz[2])

	ww := newNodes(23, 23) // w, w (two distinct node objects, same value)
	aNextSel(ww[0]).StoreRelaxed(ww[1])
	aNextSel(ww[1]).StoreRelaxed(nil)
	s.PushMultiple(ww[0], ww[1])

	chain := s.PopAll()
	// Most recently pushed chain surfaces first, each chain's own
	// front-to-back order preserved: w, w, x, y, z.
	assertIntSlice(t, chainValues(chain, aNextSel), []int{23, 23, 24, 25, 26})
}

func TestStackPushMultipleReportEmpty(t *testing.T) {
	s := qnode.NewStack(aNextSel)
	ab := newNodes(1, 2)
	aNextSel(ab[0]).StoreRelaxed(ab[1])
	aNextSel(ab[1]).StoreRelaxed(nil)

	if wasEmpty := s.PushMultipleReportEmpty(ab[0], ab[1]); !wasEmpty {
		t.Fatal("expected wasEmpty == true on first push")
	}
}

// TestStackConcurrentStress hammers a small set of shared stacks from
// many goroutines, each repeatedly draining with PopAll and re-pushing,
// and checks that no node is lost or duplicated at the end. Skipped
// under the race detector: acquire/release atomics on the shared top
// word establish the needed happens-before edges without the detector's
// visibility, and it reports false positives here.
func TestStackConcurrentStress(t *testing.T) {
	if qnode.RaceEnabled {
		t.Skip("race detector cannot observe pure atomic happens-before edges")
	}

	const numStacks = 4
	const numNodes = 2000
	const numWorkers = 8

	stacks := make([]*qnode.Stack[node], numStacks)
	for i := range stacks {
		stacks[i] = qnode.NewStack(aNextSel)
	}

	ns := newNodes(rangeInts(numNodes)...)
	for i, n := range ns {
		stacks[i%numStacks].Push(n)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			i := seed % numStacks
			for {
				select {
				case <-stop:
					return
				default:
				}
				chain := stacks[i].PopAll()
				if chain != nil {
					j := (i + 1) % numStacks
					// Re-push the drained chain onto the next stack,
					// one node at a time (exercises Push's CAS loop
					// under contention).
					for n := chain; n != nil; {
						next := aNextSel(n).LoadRelaxed()
						aNextSel(n).StoreRelaxed(nil)
						stacks[j].Push(n)
						n = next
					}
				}
				i = (i + 1) % numStacks
			}
		}(w)
	}

	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()

	seen := make(map[*node]bool, numNodes)
	for _, s := range stacks {
		for n := s.PopAll(); n != nil; {
			next := aNextSel(n).LoadRelaxed()
			if seen[n] {
				t.Fatalf("node %d observed more than once", n.val)
			}
			seen[n] = true
			n = next
		}
	}
	if len(seen) != numNodes {
		t.Fatalf("expected %d surviving nodes, got %d", numNodes, len(seen))
	}
}
