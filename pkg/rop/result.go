package rop

import (
	"fmt"
	"iter"
)

// Result is either Ok(value) or Err(error). The fields are unexported so the
// two constructors are the only way to populate one. The zero value is an Err
// holding the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// Success is Ok for results whose error side is a plain error.
func Success[T any](value T) Result[T, error] {
	return Ok[T, error](value)
}

// Fail is Err for results whose error side is a plain error.
func Fail[T any](err error) Result[T, error] {
	return Err[T](err)
}

// FromTuple converts a (value, error) pair. A nil error gives Ok.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(value)
}

// ToTuple is the inverse of FromTuple.
func ToTuple[T any](r Result[T, error]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether r is Ok and its value satisfies f.
func (r Result[T, E]) IsOkAnd(f func(T) bool) bool {
	return r.ok && f(r.value)
}

// IsErrAnd reports whether r is Err and its error satisfies f.
func (r Result[T, E]) IsErrAnd(f func(E) bool) bool {
	return !r.ok && f(r.err)
}

// Ok destructures the success payload.
//
//	if v, ok := r.Ok(); ok {
//		...
//	}
func (r Result[T, E]) Ok() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Err destructures the error payload.
func (r Result[T, E]) Err() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// Unwrap returns the value. It panics with *UnwrapError carrying the error
// when r is Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&UnwrapError{Op: "Unwrap", Payload: r.err})
	}
	return r.value
}

// UnwrapErr returns the error. It panics with *UnwrapError carrying the value
// when r is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&UnwrapError{Op: "UnwrapErr", Payload: r.value})
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// Expect is Unwrap with a caller supplied message. It panics with
// *ExpectationError.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(&ExpectationError{Message: msg, Payload: r.err})
	}
	return r.value
}

func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(&ExpectationError{Message: msg, Payload: r.value})
	}
	return r.err
}

// IntoOk is for results the caller knows can never be Err. A wrong claim
// panics with *VariantMismatchError.
func (r Result[T, E]) IntoOk() T {
	if !r.ok {
		panic(&VariantMismatchError{Op: "IntoOk", Want: "Ok", Payload: r.err})
	}
	return r.value
}

// IntoErr is for results the caller knows can never be Ok.
func (r Result[T, E]) IntoErr() E {
	if r.ok {
		panic(&VariantMismatchError{Op: "IntoErr", Want: "Err", Payload: r.value})
	}
	return r.err
}

// Inspect calls f with the value when r is Ok and returns r as is.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the error when r is Err and returns r as is.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// All yields the value once for Ok and nothing for Err.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Slice returns a one element slice for Ok and an empty slice for Err.
func (r Result[T, E]) Slice() []T {
	if r.ok {
		return []T{r.value}
	}
	return []T{}
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
