package lite

import (
	"context"

	"github.com/mudler/xlog"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/catch"
	"github.com/ib-77/rop-result/pkg/rop/core"
	"github.com/ib-77/rop-result/pkg/rop/custom"
	"github.com/ib-77/rop-result/pkg/rop/solo"
)

// Engine processes one item and delivers its outcome on the returned channel.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error]

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T, error], engine Engine[T, T], lines int) <-chan rop.Result[T, error] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine on `lines` workers. A non-positive lines value falls
// back to the worker count configured with core.WithWorkerOptions. When
// core.WithProcessOptions enabled processing remaining items, a cancelled run
// still emits one cancellation failure per unprocessed input.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In, error], engine Engine[In, Out], lines int) <-chan rop.Result[Out, error] {
	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, 1)
	}

	return custom.Turnout(ctx, inputCh, engine, cancellationHandlers[In, Out](ctx), nil, lines)
}

func cancellationHandlers[In, Out any](ctx context.Context) core.CancellationHandlers[In, Out] {
	if !core.IsProcessRemainingEnabled(ctx, false) {
		return core.CancellationHandlers[In, Out]{}
	}

	handlers := custom.Handlers[In, Out]()
	drain := handlers.OnCancel
	handlers.OnCancel = func(ctx context.Context, inputCh <-chan rop.Result[In, error], outCh chan<- rop.Result[Out, error]) {
		xlog.Debug("lite: draining remaining inputs after cancel", "cause", context.Cause(ctx))
		drain(ctx, inputCh, outCh)
	}
	return handlers
}

// Stage lifts a synchronous step into an Engine. A panic inside the step has
// no caller to reach from the worker goroutine, so it becomes the item's
// failure.
func Stage[In, Out any](step func(ctx context.Context, input rop.Result[In, error]) rop.Result[Out, error]) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error] {
		out := make(chan rop.Result[Out, error], 1)
		go func() {
			defer close(out)
			out <- catch.TryResult(func() rop.Result[Out, error] {
				return step(ctx, input)
			})
		}()
		return out
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Engine[T, T] {
	return Stage(func(ctx context.Context, input rop.Result[T, error]) rop.Result[T, error] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out, error]) Engine[In, Out] {
	return Stage(func(ctx context.Context, input rop.Result[In, error]) rop.Result[Out, error] {
		return solo.Switch(ctx, input, switchOnSuccess)
	})
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return Stage(func(ctx context.Context, input rop.Result[In, error]) rop.Result[Out, error] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

func Tee[T any](sideEffect func(ctx context.Context, r rop.Result[T, error])) Engine[T, T] {
	return Stage(func(ctx context.Context, input rop.Result[T, error]) rop.Result[T, error] {
		return solo.Tee(ctx, input, sideEffect)
	})
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	sideEffectOnCancel func(ctx context.Context, err error)) Engine[T, T] {
	return Stage(func(ctx context.Context, input rop.Result[T, error]) rop.Result[T, error] {
		return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnError, sideEffectOnCancel)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return Stage(func(ctx context.Context, input rop.Result[In, error]) rop.Result[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

// Finally reduces every result from input with handlers. The output closes
// when input closes; the caller must drain it.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In, error],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for r := range input {
			out <- solo.Finally(ctx, r, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
		}
	}()

	return out
}
