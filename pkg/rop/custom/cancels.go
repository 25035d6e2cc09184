package custom

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/core"
)

var ErrCancelled = errors.New("operation cancelled")

// Cancelled is the failure given to an item that was never processed. It
// wraps ErrCancelled and the context's cause, so rop.IsCancellationError
// holds for it once ctx is done.
func Cancelled(ctx context.Context) error {
	if cause := context.Cause(ctx); cause != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, cause)
	}
	return ErrCancelled
}

func cancelFrom[In, Out any](ctx context.Context, in rop.Result[In, error]) rop.Result[Out, error] {
	if err, isErr := in.Err(); isErr && rop.IsCancellationError(err) {
		return rop.Fail[Out](err)
	}
	return rop.Fail[Out](Cancelled(ctx))
}

// CancelRemainingResults drains inputCh, emitting one cancellation failure
// per item. An item that already carries a cancellation keeps its error.
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In, error], outCh chan<- rop.Result[Out, error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- cancelFrom[In, Out](ctx, in)
		}
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In, error],
	outCh chan<- rop.Result[Out, error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelFrom[In, Out](ctx, in)
	}
}

func CancelRemainingValue[In, Out any](ctx context.Context, in rop.Result[In, error],
	brokenF func(ctx context.Context, in rop.Result[In, error]) Out, outCh chan<- Out) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- brokenF(ctx, in)
	}
}

func CancelRemainingValues[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In, error],
	brokenF func(ctx context.Context, in rop.Result[In, error]) Out, outCh chan<- Out) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- brokenF(ctx, in)
		}
	}
}

func CancelResult[T any](ctx context.Context, out T, outCh chan<- T) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- out
	}
}

func CancelResults[T any](ctx context.Context, inputCh <-chan T, outCh chan<- T) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		for in := range inputCh {
			outCh <- in
		}
	}
}

// CancelProcessed lets an item that finished processing through.
func CancelProcessed[In, Out any](ctx context.Context, _ rop.Result[In, error],
	processed rop.Result[Out, error], outCh chan<- rop.Result[Out, error]) {
	CancelResult(ctx, processed, outCh)
}

// Handlers cancels every unprocessed item, lets an item that finished
// processing through and drains the rest of the input.
func Handlers[In, Out any]() core.CancellationHandlers[In, Out] {
	return core.CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed:   CancelProcessed[In, Out],
	}
}
