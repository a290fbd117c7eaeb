// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package qnode_test

import "github.com/coralbyte/qnode"

// node is a shared test fixture with enough link slots to exercise
// every container type: a plain slist/staillist slot, a pair of plain
// slots for DList, and a pair of atomic slots for the concurrent
// containers (one standing in for the MPSC/Stack slot, one for
// SPSCUR — never used by the same container in the same test).
type node struct {
	val int

	sLink qnode.Link[node] // SList/STailList
	dNext qnode.Link[node] // DList
	dPrev qnode.Link[node]

	aNext  qnode.AtomicLink[node] // Stack / MPSC
	urNext qnode.AtomicLink[node] // SPSCUR
}

func sNext(n *node) *qnode.Link[node]          { return &n.sLink }
func dNextSel(n *node) *qnode.Link[node]       { return &n.dNext }
func dPrevSel(n *node) *qnode.Link[node]       { return &n.dPrev }
func aNextSel(n *node) *qnode.AtomicLink[node] { return &n.aNext }
func urNextSel(n *node) *qnode.AtomicLink[node] { return &n.urNext }

func newNodes(vals ...int) []*node {
	ns := make([]*node, len(vals))
	for i, v := range vals {
		ns[i] = &node{val: v}
	}
	return ns
}
