// Package option implements Option[T], the presence/absence companion of
// rop.Result. The zero value is None.
package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/rop-result/pkg/rop"
)

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromComma builds an Option from the comma-ok idiom (map lookups, type
// assertions).
func FromComma[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) IsSomeAnd(f func(T) bool) bool {
	return o.ok && f(o.value)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the value or panics with *rop.UnwrapError.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(&rop.UnwrapError{Op: "Unwrap", Payload: "None"})
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// Expect returns the value or panics with *rop.ExpectationError.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(&rop.ExpectationError{Message: msg, Payload: "None"})
	}
	return o.value
}

// Filter keeps the value only when predicate holds.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}

func MapOr[T, U any](o Option[T], fallback U, f func(T) U) U {
	if o.ok {
		return f(o.value)
	}
	return fallback
}

func MapOrElse[T, U any](o Option[T], fallback func() U, f func(T) U) U {
	if o.ok {
		return f(o.value)
	}
	return fallback()
}

func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.ok {
		return f(o.value)
	}
	return None[U]()
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.ok {
		return o.value
	}
	return None[T]()
}

// OkOr turns Some(v) into Ok(v) and None into Err(err).
func OkOr[T, E any](o Option[T], err E) rop.Result[T, E] {
	if o.ok {
		return rop.Ok[T, E](o.value)
	}
	return rop.Err[T](err)
}

func OkOrElse[T, E any](o Option[T], f func() E) rop.Result[T, E] {
	if o.ok {
		return rop.Ok[T, E](o.value)
	}
	return rop.Err[T](f())
}

// FromOk keeps the success payload of r.
func FromOk[T, E any](r rop.Result[T, E]) Option[T] {
	v, ok := r.Ok()
	return FromComma(v, ok)
}

// FromErr keeps the error payload of r.
func FromErr[T, E any](r rop.Result[T, E]) Option[E] {
	e, ok := r.Err()
	return FromComma(e, ok)
}
