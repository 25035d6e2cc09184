// Package rop provides Result[T, E], a closed two-variant value that is either
// Ok(value) or Err(error), together with the combinators used to compose
// fallible steps railway style: once a step yields Err the remaining steps are
// skipped until something explicitly recovers.
//
// Methods cover inspection, extraction, side effects and iteration. Operations
// that change a type parameter (Map, MapErr, AndThen, OrElse, Flatten, ...) are
// package functions.
//
// Extraction on the wrong variant panics with a typed error:
// *UnwrapError, *ExpectationError or *VariantMismatchError.
package rop
