// Package custom runs engines with caller supplied cancellation strategies
// and success callbacks. lite builds its defaults on top of it.
//
// Key constructs:
// - Turnout/Run/RunSingle: orchestrate engines with handlers and success callbacks
// - Handlers: the process-remaining strategy as a ready CancellationHandlers
// - CancelRemaining* utilities: define how remaining items are cancelled
package custom
