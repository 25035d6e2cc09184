package rop_test

import (
	"testing"
	"testing/quick"

	"github.com/ib-77/rop-result/pkg/rop"
)

func gen(value int, ok bool) rop.Result[int, string] {
	if ok {
		return rop.Ok[int, string](value)
	}
	return rop.Err[int]("boom")
}

func TestFunctorLaws(t *testing.T) {
	t.Parallel()

	id := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, ok bool) bool {
		r := gen(value, ok)
		left := rop.Map(rop.Map(r, inc), dbl)
		right := rop.Map(r, func(v int) int { return dbl(inc(v)) })
		return rop.Equal(r, rop.Map(r, id)) && rop.Equal(left, right)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor laws failed: %v", err)
	}
}

func TestMonadLaws(t *testing.T) {
	t.Parallel()

	f := func(x int) rop.Result[int, string] {
		if x%2 == 0 {
			return rop.Ok[int, string](x / 2)
		}
		return rop.Err[int]("odd")
	}
	g := func(x int) rop.Result[int, string] {
		return rop.Ok[int, string](x + 3)
	}

	leftIdentity := func(x int) bool {
		return rop.Equal(rop.AndThen(rop.Ok[int, string](x), f), f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, ok bool) bool {
		r := gen(value, ok)
		return rop.Equal(rop.AndThen(r, rop.Ok[int, string]), r)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(value int, ok bool) bool {
		r := gen(value, ok)
		left := rop.AndThen(rop.AndThen(r, f), g)
		right := rop.AndThen(r, func(v int) rop.Result[int, string] {
			return rop.AndThen(f(v), g)
		})
		return rop.Equal(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestMapIsAndThenOfOk(t *testing.T) {
	t.Parallel()

	sq := func(x int) int { return x * x }
	check := func(value int, ok bool) bool {
		r := gen(value, ok)
		viaBind := rop.AndThen(r, func(v int) rop.Result[int, string] { return rop.Ok[int, string](sq(v)) })
		return rop.Equal(rop.Map(r, sq), viaBind)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("map/and-then equivalence failed: %v", err)
	}
}

func TestErr_NeverInvokesCallbacks(t *testing.T) {
	t.Parallel()

	check := func(payload string) bool {
		r := rop.Err[int](payload)
		calls := 0
		m := rop.Map(r, func(v int) int { calls++; return v })
		b := rop.AndThen(r, func(v int) rop.Result[int, string] { calls++; return rop.Ok[int, string](v) })
		i := r.Inspect(func(int) { calls++ })
		return calls == 0 && m.UnwrapErr() == payload && b.UnwrapErr() == payload && i.UnwrapErr() == payload
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("err callbacks: %v", err)
	}
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	const n = 6
	for k := 0; k < n; k++ {
		var invoked []int
		step := func(i int) func(int) rop.Result[int, string] {
			return func(v int) rop.Result[int, string] {
				invoked = append(invoked, i)
				if i == k {
					return rop.Err[int]("stage failed")
				}
				return rop.Ok[int, string](v + 1)
			}
		}

		r := rop.Ok[int, string](0)
		for i := 0; i < n; i++ {
			r = rop.AndThen(r, step(i))
		}

		if r.UnwrapErr() != "stage failed" {
			t.Fatalf("k=%d: expected the failing stage error, got %v", k, r)
		}
		if len(invoked) != k+1 || invoked[len(invoked)-1] != k {
			t.Fatalf("k=%d: stages after the failure ran: %v", k, invoked)
		}
	}
}
