package catch

import "github.com/ib-77/rop-result/pkg/rop"

func Wrap0[R any](fn func() (R, error), kinds ...Kind) func() rop.Result[R, error] {
	return func() rop.Result[R, error] {
		return Try(fn, kinds...)
	}
}

// Wrap adapts a one argument function.
//
//	parse := catch.Wrap(strconv.Atoi, catch.As[*strconv.NumError]())
//	r := parse("42")
func Wrap[A, R any](fn func(A) (R, error), kinds ...Kind) func(A) rop.Result[R, error] {
	return func(a A) rop.Result[R, error] {
		return Try(func() (R, error) { return fn(a) }, kinds...)
	}
}

func Wrap2[A, B, R any](fn func(A, B) (R, error), kinds ...Kind) func(A, B) rop.Result[R, error] {
	return func(a A, b B) rop.Result[R, error] {
		return Try(func() (R, error) { return fn(a, b) }, kinds...)
	}
}

func Wrap3[A, B, C, R any](fn func(A, B, C) (R, error), kinds ...Kind) func(A, B, C) rop.Result[R, error] {
	return func(a A, b B, c C) rop.Result[R, error] {
		return Try(func() (R, error) { return fn(a, b, c) }, kinds...)
	}
}

// WrapOp is Wrap with failures named after op, as Operation does.
func WrapOp[A, R any](op string, fn func(A) (R, error), kinds ...Kind) func(A) rop.Result[R, error] {
	return func(a A) rop.Result[R, error] {
		return Operation(op, func() (R, error) { return fn(a) }, kinds...)
	}
}
