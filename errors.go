package duct

import "errors"

// ErrReceiverExpired is returned by an mpsc Sender's Send when the
// channel's Receiver has been closed. It is also returned, wrapped, by
// any send blocked on a full or empty buffer at the moment the Receiver
// closes.
var ErrReceiverExpired = errors.New("duct: receiver expired")

// ErrSenderExpired is returned by an spmc Receiver's Recv when the
// channel's Sender has been closed and every value it sent has already
// been delivered.
var ErrSenderExpired = errors.New("duct: sender expired")
