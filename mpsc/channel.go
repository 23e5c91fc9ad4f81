package mpsc

import "github.com/nilsync/duct"

// New creates a channel with the given flavor and returns a Sender
// connected to a fresh Receiver. This is the common case; see
// [NewSender] to derive additional senders, or construct a Receiver
// directly with [NewReceiver] when only the consumer side is needed up
// front.
func New[T any](flavor duct.Flavor) (*Sender[T], *Receiver[T]) {
	rx := NewReceiver[T](flavor)
	tx := NewSender(rx)
	return tx, rx
}

// NewReceiver creates the strong endpoint of a channel with the given
// flavor, with no senders yet. Use [NewSender] to derive one.
func NewReceiver[T any](flavor duct.Flavor) *Receiver[T] {
	return newReceiver[T](duct.NewBuffer[T](flavor))
}
