// Package solo contains single-value, synchronous ROP steps that operate on
// rop.Result[T, error] and receive a context. They are the building blocks for
// the chain and lite packages.
//
// Highlights:
// - Succeed/Fail: construct results
// - Validate/AndValidate/ValidateAll: turn failed checks into *ValidationError
// - Switch: move from Result[In] to Result[Out] with a step that can fail
// - Map/DoubleMap: transform successful values (with error/cancel observers)
// - Try: call a (Out, error) function; panics in it become failures
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// A cancelled step is an Err whose error wraps context.Canceled or
// context.DeadlineExceeded; see rop.IsCancellationError.
package solo
