package core

import (
	"context"
	"sync"

	"github.com/mudler/xlog"

	"github.com/ib-77/rop-result/pkg/rop"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In, error], outCh chan<- rop.Result[Out, error])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In, error], outCh chan<- rop.Result[Out, error])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In, error], processed rop.Result[Out, error], outCh chan<- rop.Result[Out, error])
}

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// outcome to outCh until inputCh closes or ctx is done. An engine that closes
// its channel without a result stops the worker. wg.Done is called on exit.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In, error], outCh chan<- rop.Result[Out, error],
	engine func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out, error]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					xlog.Debug("core: engine closed without a result, worker stopping", "input", in.String())
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
