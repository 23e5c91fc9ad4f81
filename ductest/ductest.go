// Package ductest provides support code for driving and testing duct
// channels: helpers to spin up producer and consumer goroutines around
// an mpsc or spmc endpoint and collect what they did, using
// [taskgroup.Group] exactly as the chirp peers package drives peer
// loops.
package ductest

import (
	"sync"

	"github.com/creachadair/taskgroup"
)

// ErrSender is satisfied by an mpsc Sender: Send can fail once the
// channel's receiver has expired.
type ErrSender[T any] interface {
	Send(T) error
}

// VoidSender is satisfied by an spmc Sender: Send cannot fail.
type VoidSender[T any] interface {
	Send(T)
}

// Receiver is satisfied by both an mpsc Receiver and an spmc Receiver.
type Receiver[T any] interface {
	Recv() (T, error)
}

// Produce starts a goroutine in g that sends each of values to tx in
// order, stopping early and returning the error if a Send fails.
func Produce[T any](g *taskgroup.Group, tx ErrSender[T], values []T) {
	g.Go(func() error {
		for _, v := range values {
			if err := tx.Send(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// ProduceVoid starts a goroutine in g that sends each of values to tx
// in order. Unlike [Produce], the send cannot fail.
func ProduceVoid[T any](g *taskgroup.Group, tx VoidSender[T], values []T) {
	g.Go(func() error {
		for _, v := range values {
			tx.Send(v)
		}
		return nil
	})
}

// Collector accumulates values received concurrently by any number of
// goroutines started with [Collector.Run]. It is safe to read Values
// only after every goroutine started against it has finished (for
// example, after g.Wait() returns).
type Collector[T any] struct {
	mu     sync.Mutex
	Values []T
}

// Run starts a goroutine in g that calls rx.Recv in a loop, appending
// every value received to c.Values, until Recv reports an error (which
// Run treats as the channel's ordinary end-of-life signal, not a
// failure).
func (c *Collector[T]) Run(g *taskgroup.Group, rx Receiver[T]) {
	g.Go(func() error {
		for {
			v, err := rx.Recv()
			if err != nil {
				return nil
			}
			c.mu.Lock()
			c.Values = append(c.Values, v)
			c.mu.Unlock()
		}
	})
}

// RunN starts n goroutines in g, each calling [Collector.Run] against a
// clone of rx produced by clone. Use this to exercise fan-out delivery
// across several consumers sharing one spmc channel.
func RunN[T any](g *taskgroup.Group, c *Collector[T], n int, clone func() Receiver[T]) {
	for i := 0; i < n; i++ {
		c.Run(g, clone())
	}
}
