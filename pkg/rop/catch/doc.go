// Package catch converts failing Go calls into rop.Result values.
//
// A call can fail in two ways: by returning a non-nil error or by panicking.
// Both are treated as raised failures. A failure that matches one of the
// supplied kinds becomes Err; a failure that matches none of them is re-raised
// with panic so unexpected faults still surface at once. Supplying no kinds
// intercepts everything.
//
//	r := catch.Try(func() (int, error) { return strconv.Atoi("bad") },
//		catch.As[*strconv.NumError]())
//
// Wrap, Wrap2 and Wrap3 are the decorator form: they return a function with the
// same parameters whose result is a rop.Result.
package catch
