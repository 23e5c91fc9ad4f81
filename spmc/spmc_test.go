package spmc_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"

	"github.com/creachadair/taskgroup"

	"github.com/nilsync/duct"
	"github.com/nilsync/duct/spmc"
)

func TestUnbounded_OneConsumerPreservesSendOrder(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[int](duct.Unbounded())
	for i := 0; i < 5; i++ {
		tx.Send(i)
	}
	tx.Close()

	var got []int
	for i := 0; i < 5; i++ {
		v, err := rx.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got = append(got, v)
	}
	want := []int{0, 1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("received values (-want +got):\n%s", diff)
	}
}

func TestUnbounded_FanOutNoLossNoDuplication(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[int](duct.Unbounded())
	const n = 200
	const consumers = 5

	got := make(chan int, n)
	g := taskgroup.New(nil)
	for c := 0; c < consumers; c++ {
		my := rx.Clone()
		g.Go(func() error {
			for {
				v, err := my.Recv()
				if err != nil {
					return nil
				}
				got <- v
			}
		})
	}

	for i := 0; i < n; i++ {
		tx.Send(i)
	}
	tx.Close()
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	close(got)

	var all []int
	for v := range got {
		all = append(all, v)
	}
	sort.Ints(all)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("received values, as a set (-want +got):\n%s", diff)
	}
}

func TestRecv_SenderExpiredAfterDrain(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[string](duct.Bounded(2))
	tx.Send("a")
	tx.Send("b")
	tx.Close()

	for _, want := range []string{"a", "b"} {
		v, err := rx.Recv()
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		if v != want {
			t.Fatalf("Recv() = %q, want %q", v, want)
		}
	}

	if _, err := rx.Recv(); !errors.Is(err, duct.ErrSenderExpired) {
		t.Fatalf("Recv after drain: err = %v, want ErrSenderExpired", err)
	}
}

func TestRecv_BlockedOnEmptyBufferExpiresOnClose(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[int](duct.Unbounded())

	result := make(chan error, 1)
	g := taskgroup.New(nil)
	g.Go(func() error {
		_, err := rx.Recv()
		result <- err
		return nil
	})

	tx.Close()
	if err := <-result; !errors.Is(err, duct.ErrSenderExpired) {
		t.Fatalf("blocked Recv after Close: err = %v, want ErrSenderExpired", err)
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestRendezvous_SingleReceiverWinsRace(t *testing.T) {
	defer leaktest.Check(t)()

	tx, rx := spmc.New[int](duct.Rendezvous())
	const consumers = 4

	results := make(chan int, consumers)
	g := taskgroup.New(nil)
	for c := 0; c < consumers; c++ {
		my := rx.Clone()
		g.Go(func() error {
			v, err := my.Recv()
			if err == nil {
				results <- v
			}
			return nil
		})
	}

	tx.Send(7)
	got := <-results
	if got != 7 {
		t.Fatalf("winning receiver got %d, want 7", got)
	}
	tx.Close()
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	close(results)

	// Exactly one receiver should have taken the value: the one already
	// read above, with nothing else left in results.
	count := 1
	for range results {
		count++
	}
	if count != 1 {
		t.Fatalf("receivers that took a value = %d, want 1", count)
	}
}
