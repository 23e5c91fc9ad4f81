// Package mpsc implements multi-producer, single-consumer channels.
//
// A channel has one [Receiver] and any number of [Sender] values cloned
// from it. The Receiver is the channel's strong owner: it must not be
// copied, and closing it is what lets blocked or future Senders observe
// that the channel is gone.
//
// # Creating a channel
//
//	tx, rx := mpsc.New[int](duct.Unbounded())
//
// Additional senders are cloned cheaply from an existing one or derived
// directly from the receiver:
//
//	tx2 := tx.Clone()
//	tx3 := mpsc.NewSender(rx)
//
// # Sending and receiving
//
// Send blocks as the channel's flavor requires (never, for
// [duct.Unbounded]; until there is room, for [duct.Bounded]; until a
// Recv is ready to take the value, for [duct.Rendezvous]). It fails with
// [duct.ErrReceiverExpired] once the Receiver has been closed.
//
// Recv blocks until a value is available. It normally only returns an
// error if the Receiver itself has already been closed by a concurrent
// call — a channel's own owner does not need a sender-side signal to
// know when to stop receiving.
package mpsc
