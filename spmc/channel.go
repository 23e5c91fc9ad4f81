package spmc

import "github.com/nilsync/duct"

// New creates a channel with the given flavor and returns a Receiver
// connected to a fresh Sender. This is the common case; see
// [NewReceiver] to derive additional receivers, or construct a Sender
// directly with [NewSender] when no receivers are needed up front.
func New[T any](flavor duct.Flavor) (*Sender[T], *Receiver[T]) {
	tx := NewSender[T](flavor)
	rx := NewReceiver(tx)
	return tx, rx
}

// NewSender creates the strong endpoint of a channel with the given
// flavor, with no receivers yet. Use [NewReceiver] to derive one.
func NewSender[T any](flavor duct.Flavor) *Sender[T] {
	return newSender[T](duct.NewBuffer[T](flavor))
}
