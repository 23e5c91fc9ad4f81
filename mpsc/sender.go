package mpsc

import (
	"fmt"

	"github.com/nilsync/duct"
	"github.com/nilsync/duct/internal/queue"
)

// Sender is the copyable, observing endpoint of an mpsc channel. A zero
// Sender is not usable; obtain one with [New], [NewSender], or
// [Sender.Clone]. Any number of Senders may share a channel and call
// Send concurrently.
type Sender[T any] struct {
	buf queue.Buffer[T]
}

// NewSender derives a Sender from rx. Any number of Senders may be
// derived this way; all of them observe the same Receiver's lifetime.
func NewSender[T any](rx *Receiver[T]) *Sender[T] {
	metrics.sendersCloned.Add(1)
	return &Sender[T]{buf: rx.buf}
}

// Clone returns a new Sender sharing this one's channel.
func (s *Sender[T]) Clone() *Sender[T] {
	metrics.sendersCloned.Add(1)
	return &Sender[T]{buf: s.buf}
}

// Send delivers v to the channel's Receiver, blocking as the channel's
// flavor requires. It reports [duct.ErrReceiverExpired], wrapped, once
// the Receiver has been closed — whether that happened before Send was
// called or while Send was blocked waiting for room or a matching Recv.
func (s *Sender[T]) Send(v T) error {
	if !s.buf.Push(v) {
		metrics.sendsExpired.Add(1)
		return fmt.Errorf("send: %w", duct.ErrReceiverExpired)
	}
	metrics.sendsOK.Add(1)
	return nil
}
