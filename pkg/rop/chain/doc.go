// Package chain provides a fluent wrapper around rop.Result[T, error]
// for building synchronous railway chains using solo steps.
//
// Each chain gets a uuid so the step where it leaves the success track can be
// correlated in the logs.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U] via a step that can fail
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/EnsureErr: run side effects without changing the result
// - Recover: switch back to the success track from a failure
// - Finally: collapse the chain into a final value via handlers
package chain
