package custom

import (
	"context"
	"sync"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/core"
)

// Turnout runs engine on `lines` workers sharing inputCh. onSuccess, if set,
// sees every result a worker delivered. The output closes once all workers
// return.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In, error],
	engine func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error],
	handlers core.CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out, error]), lines int) <-chan rop.Result[Out, error] {

	out := make(chan rop.Result[Out, error])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T, error],
	engine func(ctx context.Context, input rop.Result[T, error]) <-chan rop.Result[T, error],
	handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in rop.Result[T, error]), lines int) <-chan rop.Result[T, error] {
	return Turnout(ctx, inputCh, engine, handlers, onSuccess, lines)
}

// RunSingle keeps input order.
func RunSingle[T any](ctx context.Context, inputCh <-chan rop.Result[T, error],
	engine func(ctx context.Context, input rop.Result[T, error]) <-chan rop.Result[T, error],
	handlers core.CancellationHandlers[T, T],
	onSuccess func(ctx context.Context, in rop.Result[T, error])) <-chan rop.Result[T, error] {
	return Run(ctx, inputCh, engine, handlers, onSuccess, 1)
}
