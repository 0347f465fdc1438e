package roadgraph

import (
	"math/rand"

	"github.com/unixpickle/essentials"
)

// Node lifecycle states. A node sits in the queue at most once & once
// saturated it never comes back.
const (
	stateIdle uint8 = iota
	stateQueued
	stateExpanding
	stateSaturated
)

// compact the popped prefix once it dominates the queue
const compactAfter = 1024

// frontier tracks which nodes are eligible to sprout new roads.
//
// Pop order is FIFO by default, or uniform random if `random` is set;
// both are deterministic for a fixed rng.
type frontier struct {
	rng       *rand.Rand
	random    bool
	maxDegree int

	queue []int
	head  int // queue[:head] has been popped (FIFO mode only)

	state []uint8 // indexed by node id
}

func newFrontier(rng *rand.Rand, random bool, maxDegree int) *frontier {
	return &frontier{
		rng:       rng,
		random:    random,
		maxDegree: maxDegree,
		queue:     []int{},
		state:     []uint8{},
	}
}

// Len returns how many nodes are queued for expansion.
func (f *frontier) Len() int {
	return len(f.queue) - f.head
}

// Saturated returns if the given node has left the frontier for good.
func (f *frontier) Saturated(id int) bool {
	if id < 0 || id >= len(f.state) {
		return false
	}
	return f.state[id] == stateSaturated
}

// ensure grows the state arena to cover id
func (f *frontier) ensure(id int) {
	for len(f.state) <= id {
		f.state = append(f.state, stateIdle)
	}
}

// PushIfEligible queues the node for (re)expansion. Nodes already
// queued are left alone; nodes at or over the degree cap are marked
// saturated & will never be queued again.
func (f *frontier) PushIfEligible(id, degree int) {
	f.ensure(id)
	if f.state[id] == stateSaturated || f.state[id] == stateQueued {
		return
	}
	if degree >= f.maxDegree {
		f.state[id] = stateSaturated
		return
	}
	f.state[id] = stateQueued
	f.queue = append(f.queue, id)
}

// Pop removes & returns the next node to expand, false if the frontier
// is empty.
func (f *frontier) Pop() (int, bool) {
	if f.Len() == 0 {
		return 0, false
	}

	var id int
	if f.random {
		i := f.head + f.rng.Intn(f.Len())
		id = f.queue[i]
		essentials.UnorderedDelete(&f.queue, i)
	} else {
		id = f.queue[f.head]
		f.head++
		if f.head >= compactAfter && f.head*2 >= len(f.queue) {
			f.queue = append(f.queue[:0], f.queue[f.head:]...)
			f.head = 0
		}
	}

	f.state[id] = stateExpanding
	return id, true
}
