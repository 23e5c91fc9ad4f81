// Package duct provides typed, in-process message-passing channels.
//
// A channel carries values of one element type from one or more senders to
// one or more receivers running in separate goroutines. Two topologies are
// available, each in the mpsc and spmc subpackages:
//
//   - mpsc: many senders, one receiver.
//   - spmc: one sender, many receivers.
//
// Both topologies come in three buffering flavors, selected with [Flavor]
// constructors:
//
//	duct.Unbounded()   // async FIFO, unlimited capacity
//	duct.Bounded(n)    // sync FIFO, capacity n, back-pressure on n+1th send
//	duct.Rendezvous()  // zero capacity: send and receive hand off directly
//
// # Lifecycle
//
// Every channel has exactly one non-copyable endpoint (the mpsc Receiver, or
// the spmc Sender) and one copyable endpoint (the mpsc Sender, or the spmc
// Receiver). The non-copyable endpoint implements [io.Closer]; closing it is
// how this package renders endpoint destruction in a language without
// deterministic destructors. Once closed:
//
//   - Further sends through a copyable mpsc Sender fail with
//     [ErrReceiverExpired].
//   - Further receives through a copyable spmc Receiver fail with
//     [ErrSenderExpired] once every value already sent has been delivered.
//
// # Example
//
//	tx, rx := mpsc.New[int](duct.Bounded(4))
//	go func() {
//	    for i := 0; i < 10; i++ {
//	        if err := tx.Send(i); err != nil {
//	            return // rx was closed
//	        }
//	    }
//	}()
//	defer rx.Close()
//	for i := 0; i < 10; i++ {
//	    v, err := rx.Recv()
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(v)
//	}
package duct
