package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	id     uuid.UUID
	step   int
	result rop.Result[T, error]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		id:     uuid.New(),
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T, error] {
	return c.result
}

func (c *Chain[T]) ID() uuid.UUID {
	return c.id
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

func next[T, U any](c *Chain[T], result rop.Result[U, error]) *Chain[U] {
	n := &Chain[U]{
		ctx:    c.ctx,
		id:     c.id,
		step:   c.step + 1,
		result: result,
	}
	if c.result.IsOk() && result.IsErr() {
		xlog.Debug("chain switched to failure track", "chain", c.id.String(), "step", n.step, "error", result.UnwrapErr())
	}
	return n
}

// Then chains a function that returns rop.Result[U, error]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U, error]) *Chain[U] {
	return next(c, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return next(c, solo.Map(c.ctx, c.result, onSuccess))
}

// Recover gives a failed chain a way back to the success track
func Recover[T any](c *Chain[T], onFailure func(context.Context, error) rop.Result[T, error]) *Chain[T] {
	return next(c, rop.OrElse(c.result, func(err error) rop.Result[T, error] {
		return onFailure(c.ctx, err)
	}))
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	c.result.Inspect(func(v T) { onSuccess(c.ctx, v) })
	return c
}

// EnsureErr performs a side effect on failure without changing the result
func (c *Chain[T]) EnsureErr(onFailure func(context.Context, error)) *Chain[T] {
	c.result.InspectErr(func(err error) { onFailure(c.ctx, err) })
	return c
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
