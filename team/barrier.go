package team

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBarrierBroken is the panic value (wrapped) delivered to goroutines
// blocked in, or arriving at, a Barrier after Break was called.
var ErrBarrierBroken = errors.New("team: barrier broken")

// Barrier is a reusable full-team rendezvous for a fixed number of parties.
// Each Wait blocks until all parties of the current generation arrive; the
// last arrival opens the barrier and starts the next generation.
//
// All writes made by any party before its Wait happen-before every party's
// return from that same Wait.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
	cause   error // non-nil once broken
}

// NewBarrier returns a Barrier for parties goroutines (parties >= 1).
func NewBarrier(parties int) *Barrier {
	if parties < 1 {
		panic(fmt.Sprintf("team: NewBarrier(%d)", parties))
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// Parties returns the number of goroutines the barrier waits for.
func (b *Barrier) Parties() int { return b.parties }

// Wait blocks until every party has called Wait for the current generation.
// If the barrier is or becomes broken, Wait panics with an error wrapping
// ErrBarrierBroken; Team.Run converts that panic into a returned error.
func (b *Barrier) Wait() {
	b.mu.Lock()
	if b.cause != nil {
		b.mu.Unlock()
		panic(b.brokenErr())
	}
	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for gen == b.gen && b.cause == nil {
		b.cond.Wait()
	}
	if gen == b.gen {
		// woken by Break, not by the last arrival
		b.mu.Unlock()
		panic(b.brokenErr())
	}
	b.mu.Unlock()
}

// Break releases every waiter and makes all future Waits panic. The first
// cause wins; later calls are no-ops.
func (b *Barrier) Break(cause error) {
	if cause == nil {
		cause = ErrBarrierBroken
	}
	b.mu.Lock()
	if b.cause == nil {
		b.cause = cause
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

// Cause returns the error passed to the first Break, or nil.
func (b *Barrier) Cause() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cause
}

// brokenErr must be called with b.mu held.
func (b *Barrier) brokenErr() error {
	if errors.Is(b.cause, ErrBarrierBroken) {
		return b.cause
	}

	return fmt.Errorf("%w: %v", ErrBarrierBroken, b.cause)
}
