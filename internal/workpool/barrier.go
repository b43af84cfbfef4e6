package workpool

import (
	"sync"
)

// Barrier is a reusable rendezvous point for a fixed number of goroutines.
// Wait blocks until n goroutines have called it, then releases them all &
// resets for the next round.
//
// Everything a goroutine wrote before its Wait is visible to every other
// goroutine once their Wait returns.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	n       int
	waiting int
	round   uint64
}

// NewBarrier returns a barrier for n parties.
func NewBarrier(n int) *Barrier {
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all parties have arrived.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	round := b.round
	b.waiting++
	if b.waiting == b.n {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		return
	}

	for round == b.round {
		b.cond.Wait()
	}
}

// Parties is the number of goroutines the barrier waits for.
func (b *Barrier) Parties() int {
	return b.n
}
