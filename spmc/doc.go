// Package spmc implements single-producer, multi-consumer channels.
//
// A channel has one [Sender] and any number of [Receiver] values cloned
// from it. The Sender is the channel's strong owner: it must not be
// copied, and closing it is what lets blocked or future Receivers
// observe that the channel is gone, once every value already sent has
// been delivered.
//
// # Creating a channel
//
//	tx, rx := spmc.New[int](duct.Bounded(1))
//
// Additional receivers are cloned cheaply from an existing one or
// derived directly from the sender:
//
//	rx2 := rx.Clone()
//	rx3 := spmc.NewReceiver(tx)
//
// # Sending and receiving
//
// Send cannot fail: the Sender owns the channel outright, so there is
// nothing for it to have expired. Recv blocks until a value is
// available and fails with [duct.ErrSenderExpired] once the Sender has
// been closed and every value it sent has already been delivered.
package spmc
