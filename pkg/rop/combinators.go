package rop

import "iter"

// Map applies f to the value of an Ok result. An Err is re-typed and returned
// without calling f.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U](r.err)
}

// MapErr applies f to the error of an Err result.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

// MapOr returns f(value) for Ok and fallback for Err. The fallback is a plain
// value already built by the caller; use MapOrElse to defer it.
func MapOr[T, E, U any](r Result[T, E], fallback U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return fallback
}

// MapOrDefault is MapOr with the arguments swapped.
func MapOrDefault[T, E, U any](r Result[T, E], f func(T) U, fallback U) U {
	return MapOr(r, fallback, f)
}

// MapOrElse folds r into a single value.
func MapOrElse[T, E, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// AndThen chains a step that can itself fail. An Err short-circuits.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

// OrElse is the recovery path: f runs only for Err.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Err[T](r.err)
}

// Equal reports whether a and b are the same variant with equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}

// Values flattens a sequence of results into the Ok values, skipping Errs.
func Values[T, E any](results iter.Seq[Result[T, E]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range results {
			for v := range r.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect gathers the Ok values. The returned slice never aliases the input.
func Collect[T, E any](results []Result[T, E]) []T {
	values := make([]T, 0, len(results))
	for _, r := range results {
		values = append(values, r.Slice()...)
	}
	return values
}

// Partition splits results into Ok values and Err payloads, keeping order.
func Partition[T, E any](results []Result[T, E]) ([]T, []E) {
	values := make([]T, 0, len(results))
	errs := make([]E, 0)
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Sequence turns a slice of results into a result of a slice, returning the
// first Err it meets.
func Sequence[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}
