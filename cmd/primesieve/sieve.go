package main

import (
	"log"
	"sort"
	"sync"

	"github.com/creachadair/taskgroup"

	"github.com/nilsync/duct"
	"github.com/nilsync/duct/spmc"
)

// sieve feeds the integers [3, n) through a cascade of worker goroutines,
// one per prime discovered, each forwarding values that are not a
// multiple of its own bound prime to a child bound to the next one it
// sees. The cascade is seeded with a worker bound to 2. A negative
// sentinel, sent after the last candidate, propagates down the cascade
// and stops every worker. It returns the sorted set of worker ids
// spawned, i.e. the primes found below n.
func sieve(n int) ([]int, error) {
	var spawned idSet
	spawned.add(2)

	tx := spmc.NewSender[int](duct.Bounded(1))
	root := newWorker(2, spmc.NewReceiver(tx), &spawned)

	g := taskgroup.New(nil)
	root.start(g)

	for i := 3; i < n; i++ {
		log.Printf("master before sending %d", i)
		tx.Send(i)
		log.Printf("master after sending %d", i)
	}

	log.Printf("master before sending stop")
	tx.Send(-1)
	log.Printf("master after sending stop")

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return spawned.sorted(), nil
}

// idSet accumulates worker ids spawned during a cascade run, safe for
// concurrent use by the goroutines that create child workers.
type idSet struct {
	mu  sync.Mutex
	ids []int
}

func (s *idSet) add(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
}

func (s *idSet) sorted() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]int(nil), s.ids...)
	sort.Ints(out)
	return out
}

// worker is bound to the first prime it ever receives (2, for the root
// worker) and forwards every later value not divisible by that prime to
// a child worker bound to the first such value it sees.
type worker struct {
	id      int
	tx      *spmc.Sender[int]
	rx      *spmc.Receiver[int]
	spawned *idSet
}

func newWorker(id int, rx *spmc.Receiver[int], spawned *idSet) *worker {
	return &worker{id: id, tx: spmc.NewSender[int](duct.Bounded(1)), rx: rx, spawned: spawned}
}

func (w *worker) start(g *taskgroup.Group) {
	g.Go(func() error {
		var child *worker
		for {
			value, err := w.rx.Recv()
			if err != nil {
				break
			}
			if value < 0 {
				log.Printf("thread %d received stop condition", w.id)
				if child != nil {
					w.tx.Send(value)
				}
				break
			}
			if value%w.id == 0 {
				log.Printf("thread %d received non-prime: %d", w.id, value)
				continue
			}
			log.Printf("thread %d received prime: %d", w.id, value)
			if child == nil {
				log.Printf("thread %d creating child", w.id)
				w.spawned.add(value)
				child = newWorker(value, spmc.NewReceiver(w.tx), w.spawned)
				child.start(g)
			}
			log.Printf("thread %d sending %d to child", w.id, value)
			w.tx.Send(value)
		}
		log.Printf("thread %d stopping", w.id)
		return nil
	})
}
