package catch

import (
	"github.com/mudler/xlog"

	"github.com/ib-77/rop-result/pkg/rop"
)

type outcome[T any] struct {
	value  T
	err    error
	raised any
}

func invoke[T any](fn func() (T, error)) (o outcome[T]) {
	defer func() {
		if p := recover(); p != nil {
			o.raised = p
			if err, ok := p.(error); ok {
				o.err = err
			} else {
				o.err = &PanicError{Value: p}
			}
		}
	}()

	o.value, o.err = fn()
	return o
}

// classify returns the failure to store in Err, or re-raises it.
func classify[T any](o outcome[T], kinds []Kind) error {
	if !intercepts(o.err, kinds) {
		xlog.Debug("catch: failure not intercepted, propagating", "error", o.err, "panicked", o.raised != nil)
		if o.raised != nil {
			panic(o.raised)
		}
		panic(o.err)
	}
	xlog.Debug("catch: failure intercepted", "error", o.err, "panicked", o.raised != nil)
	return o.err
}

// Try runs fn. A normal return becomes Ok; a returned error or a panic that
// matches kinds becomes Err. Anything else is re-raised.
func Try[T any](fn func() (T, error), kinds ...Kind) rop.Result[T, error] {
	o := invoke(fn)
	if rop.IsNil(o.err) {
		return rop.Success(o.value)
	}
	return rop.Fail[T](classify(o, kinds))
}

// Catch runs a function that reports failure only by panicking.
func Catch[T any](fn func() T, kinds ...Kind) rop.Result[T, error] {
	return Try(func() (T, error) { return fn(), nil }, kinds...)
}

// TryResult runs a function that already returns a Result. Its result passes
// through unchanged; only panics are classified.
func TryResult[T any](fn func() rop.Result[T, error], kinds ...Kind) rop.Result[T, error] {
	o := invoke(func() (rop.Result[T, error], error) { return fn(), nil })
	if o.raised == nil {
		return o.value
	}
	return rop.Fail[T](classify(o, kinds))
}

// Operation is Try with caught failures wrapped in *PipelineError naming op.
func Operation[T any](op string, fn func() (T, error), kinds ...Kind) rop.Result[T, error] {
	return rop.MapErr(Try(fn, kinds...), func(err error) error {
		return &PipelineError{Op: op, Err: err}
	})
}
