package mpsc

import (
	"io"

	"github.com/nilsync/duct/internal/queue"
)

// Receiver is the strong, non-copyable endpoint of an mpsc channel. Hold
// it by pointer; do not copy the value it points to. Closing it is the
// Go rendering of the channel's owning endpoint being destroyed: every
// [Sender] cloned from it starts failing its Send calls with
// [duct.ErrReceiverExpired].
type Receiver[T any] struct {
	buf queue.Buffer[T]
}

// newReceiver constructs a Receiver backed by buf. It is unexported
// because every external construction path goes through [New] or
// [NewReceiver].
func newReceiver[T any](buf queue.Buffer[T]) *Receiver[T] {
	metrics.channelsOpened.Add(1)
	return &Receiver[T]{buf: buf}
}

// Recv blocks until a value is available and returns it. It returns
// io.EOF only if this Receiver has already been [Receiver.Close]d by a
// concurrent caller; a channel's receiver does not need any sender-side
// signal to know when to stop, since it is the one deciding the
// channel's lifetime.
func (r *Receiver[T]) Recv() (T, error) {
	v, ok := r.buf.Pop()
	if !ok {
		var zero T
		return zero, io.EOF
	}
	metrics.recvsOK.Add(1)
	return v, nil
}

// Close marks the channel closed. Every Sender cloned from this
// Receiver, and every Sender that is blocked sending at the moment
// Close is called, observes [duct.ErrReceiverExpired]. Close is
// idempotent and safe to call from any goroutine.
func (r *Receiver[T]) Close() error {
	r.buf.Close()
	return nil
}
