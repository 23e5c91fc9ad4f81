// Package queue implements the three buffering disciplines shared by the
// mpsc and spmc packages: an unbounded FIFO, a bounded FIFO with
// back-pressure, and a zero-capacity rendezvous hand-off.
//
// Every discipline satisfies the same contract:
//
//	Push(v T) bool   // false means the buffer is closed; v was not accepted
//	Pop() (T, bool)  // false means the buffer is closed and drained
//	Close()          // marks the buffer closed and wakes every waiter
//
// Close is the Go rendering of "the non-copyable endpoint was destroyed" —
// see SPEC_FULL.md §3. A buffer is shared by exactly one owner (who may call
// Close) and any number of observers (who only call Push/Pop); which side
// is the owner is a property of the topology, not of the buffer itself, so
// this package does not distinguish them.
//
// A buffer that has already delivered values before Close was called keeps
// delivering them: Pop drains whatever is queued before it starts reporting
// closed. A buffer never blocks a Push or Pop forever once Close has been
// called — every condition variable wait here also wakes on close.
package queue

// Buffer is the contract implemented by [NewUnbounded], [NewBounded], and
// [NewRendezvous]. All three are safe for concurrent use by any number of
// goroutines.
type Buffer[T any] interface {
	// Push adds v to the buffer, blocking as the discipline requires. It
	// reports false if the buffer was already closed and v was discarded.
	Push(v T) bool

	// Pop removes and returns the next value, blocking until one is
	// available or the buffer is closed and empty. It reports false in the
	// latter case, with the zero value of T.
	Pop() (T, bool)

	// Close marks the buffer closed, waking every blocked Push and Pop.
	// Close is idempotent. After Close, Push always reports false; Pop
	// continues to drain any values already queued, then reports false.
	Close()
}
