package duct

import (
	"fmt"

	"github.com/creachadair/mds/value"

	"github.com/nilsync/duct/internal/queue"
)

// Flavor selects a channel's buffering discipline. Construct one with
// [Unbounded], [Bounded], or [Rendezvous]; Flavor values are immutable
// and safe to share.
type Flavor struct {
	kind     flavorKind
	capacity int
}

type flavorKind int

const (
	flavorUnbounded flavorKind = iota
	flavorBounded
	flavorRendezvous
)

// Unbounded selects an async FIFO of unlimited capacity. Sends never
// block.
func Unbounded() Flavor { return Flavor{kind: flavorUnbounded} }

// Bounded selects a sync FIFO holding at most n values. Sends block
// while the buffer is full; receives block while it is empty. Bounded
// panics if n is not positive.
func Bounded(n int) Flavor {
	if n <= 0 {
		panic("duct: Bounded capacity must be positive")
	}
	return Flavor{kind: flavorBounded, capacity: n}
}

// Rendezvous selects a zero-capacity hand-off: a send blocks until a
// receive is ready to take the value, and vice versa.
func Rendezvous() Flavor { return Flavor{kind: flavorRendezvous} }

func (f Flavor) String() string {
	if f.kind == flavorRendezvous {
		return "rendezvous"
	}
	return value.Cond(f.kind == flavorBounded, fmt.Sprintf("bounded(%d)", f.capacity), "unbounded")
}

// NewBuffer constructs the queue.Buffer implementation matching f, for
// use by the mpsc and spmc packages.
func NewBuffer[T any](f Flavor) queue.Buffer[T] {
	switch f.kind {
	case flavorBounded:
		return queue.NewBounded[T](f.capacity)
	case flavorRendezvous:
		return queue.NewRendezvous[T]()
	default:
		return queue.NewUnbounded[T]()
	}
}
