package solo

import (
	"context"
	"errors"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/catch"
)

func Succeed[T any](input T) rop.Result[T, error] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T, error] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T, error] {

	return rop.AndThen(input, func(in T) rop.Result[T, error] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Fail[T](&ValidationError{Message: errMsg})
		}
		return input
	})
}

// ValidateAll runs every validator against input. With breakOnError the
// first failure is returned as is; otherwise all failures are collected with
// errors.Join, in validator order.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	if len(inputsF) == 0 || input.IsErr() || !rop.IsNil(ctx.Err()) {
		return input
	}

	var errs []error
	for _, validate := range inputsF {
		if !rop.IsNil(ctx.Err()) {
			break
		}

		if e, failed := validate(ctx, input).Err(); failed {
			if breakOnError {
				return rop.Fail[T](e)
			}
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return rop.Fail[T](errors.Join(errs...))
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, error]) rop.Result[Out, error] {

	return rop.AndThen(input, func(in In) rop.Result[Out, error] {
		return onSuccess(ctx, in)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, error] {

	return rop.Map(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T, error],
	onSuccess func(ctx context.Context, r rop.Result[T, error])) rop.Result[T, error] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T, error],
	condition func(ctx context.Context, r rop.Result[T, error]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, error])) rop.Result[T, error] {

	if input.IsOk() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T, error] {

	observe(ctx, input, onSuccess, onError, onCancel)
	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[Out, error] {

	observe(ctx, input, nil, onError, onCancel)
	return Map(ctx, input, onSuccess)
}

func observe[T any](ctx context.Context, input rop.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) {

	if v, ok := input.Ok(); ok {
		if onSuccess != nil {
			onSuccess(ctx, v)
		}
		return
	}

	err := input.UnwrapErr()
	if rop.IsCancellationError(err) {
		if onCancel != nil {
			onCancel(ctx, err)
		}
	} else if onError != nil {
		onError(ctx, err)
	}
}

// Try runs onTryExecute on a successful input. A returned error or a panic
// inside it becomes the failure.
func Try[In any, Out any](ctx context.Context, input rop.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out, error] {

	return rop.AndThen(input, func(in In) rop.Result[Out, error] {
		return catch.Try(func() (Out, error) {
			return onTryExecute(ctx, in)
		})
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T, error] {

	return rop.AndThen(input, func(in T) rop.Result[T, error] {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return rop.MapOrElse(input,
		func(err error) Out {
			if rop.IsCancellationError(err) {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		},
		func(in In) Out {
			return onSuccess(ctx, in)
		})
}

// Join threads input through inputsF, passing each step's output through
// concat. With breakOnError the first failure stops the run.
func Join[T any](ctx context.Context,
	input rop.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, error]) rop.Result[T, error],
	inputsF ...func(ctx context.Context, in rop.Result[T, error]) rop.Result[T, error]) rop.Result[T, error] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
