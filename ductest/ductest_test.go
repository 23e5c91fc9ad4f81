package ductest_test

import (
	"sort"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"

	"github.com/creachadair/taskgroup"

	"github.com/nilsync/duct"
	"github.com/nilsync/duct/ductest"
	"github.com/nilsync/duct/mpsc"
	"github.com/nilsync/duct/spmc"
)

func TestProduceAndCollect_MPSC(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := mpsc.New[int](duct.Bounded(3))
	values := make([]int, 30)
	for i := range values {
		values[i] = i
	}

	g := taskgroup.New(nil)
	ductest.Produce(g, tx, values)

	// mpsc has no producer-done signal: the receiver is the owner, so the
	// test drives Recv directly for the known count instead of using a
	// Collector, which would otherwise block forever waiting for a value
	// that will never come.
	var got []int
	for range values {
		v, err := rx.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got = append(got, v)
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	rx.Close()

	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("collected values (-want +got):\n%s", diff)
	}
}

func TestProduceVoidAndFanOut_SPMC(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[int](duct.Unbounded())
	values := make([]int, 60)
	for i := range values {
		values[i] = i
	}

	// spmc's Sender is the owner: it decides when the channel is done, so
	// the producer finishes and closes tx before the collectors below are
	// started. Since the buffer is unbounded, the producer never blocks
	// on back-pressure waiting for a consumer that doesn't exist yet.
	producers := taskgroup.New(nil)
	ductest.ProduceVoid(producers, tx, values)
	if err := producers.Wait(); err != nil {
		t.Fatal(err)
	}
	tx.Close()

	g := taskgroup.New(nil)
	var col ductest.Collector[int]
	ductest.RunN(g, &col, 3, func() ductest.Receiver[int] { return rx.Clone() })

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	got := append([]int(nil), col.Values...)
	sort.Ints(got)
	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("collected values, as a set (-want +got):\n%s", diff)
	}
}
