package spmc

import "github.com/nilsync/duct/internal/queue"

// Sender is the strong, non-copyable endpoint of an spmc channel. Hold
// it by pointer; do not copy the value it points to. Closing it is the
// Go rendering of the channel's owning endpoint being destroyed: every
// [Receiver] cloned from it starts failing its Recv calls with
// [duct.ErrSenderExpired] once the values already sent have been
// delivered.
type Sender[T any] struct {
	buf queue.Buffer[T]
}

// newSender constructs a Sender backed by buf. It is unexported because
// every external construction path goes through [New] or [NewSender].
func newSender[T any](buf queue.Buffer[T]) *Sender[T] {
	metrics.channelsOpened.Add(1)
	return &Sender[T]{buf: buf}
}

// Send delivers v to the channel, blocking as the channel's flavor
// requires. It cannot fail: the Sender owns the channel, so there is
// nothing for it to have expired against. Sending after Close is a
// misuse of the API and silently discards v.
func (s *Sender[T]) Send(v T) {
	s.buf.Push(v)
	metrics.sendsOK.Add(1)
}

// Close marks the channel closed. Every Receiver cloned from this
// Sender continues to drain any values already sent, then observes
// [duct.ErrSenderExpired]. Close is idempotent and safe to call from
// any goroutine.
func (s *Sender[T]) Close() error {
	s.buf.Close()
	return nil
}
