package main

import (
	"testing"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
)

func TestSieve_PrimesBelow30(t *testing.T) {
	defer leaktest.Check(t)()

	got, err := sieve(30)
	if err != nil {
		t.Fatalf("sieve(30): %v", err)
	}
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("worker ids spawned (-want +got):\n%s", diff)
	}
}
