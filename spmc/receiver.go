package spmc

import (
	"fmt"

	"github.com/nilsync/duct"
	"github.com/nilsync/duct/internal/queue"
)

// Receiver is the copyable, observing endpoint of an spmc channel. A
// zero Receiver is not usable; obtain one with [New], [NewReceiver], or
// [Receiver.Clone]. Any number of Receivers may share a channel and
// call Recv concurrently; each value sent is delivered to exactly one
// of them.
type Receiver[T any] struct {
	buf queue.Buffer[T]
}

// NewReceiver derives a Receiver from tx. Any number of Receivers may
// be derived this way; all of them observe the same Sender's lifetime.
func NewReceiver[T any](tx *Sender[T]) *Receiver[T] {
	metrics.receiversCloned.Add(1)
	return &Receiver[T]{buf: tx.buf}
}

// Clone returns a new Receiver sharing this one's channel.
func (r *Receiver[T]) Clone() *Receiver[T] {
	metrics.receiversCloned.Add(1)
	return &Receiver[T]{buf: r.buf}
}

// Recv blocks until a value is available and returns it. It reports
// [duct.ErrSenderExpired], wrapped, once the Sender has been closed and
// every value it sent has already been delivered to some Receiver.
func (r *Receiver[T]) Recv() (T, error) {
	v, ok := r.buf.Pop()
	if !ok {
		metrics.recvsExpired.Add(1)
		var zero T
		return zero, fmt.Errorf("recv: %w", duct.ErrSenderExpired)
	}
	metrics.recvsOK.Add(1)
	return v, nil
}
