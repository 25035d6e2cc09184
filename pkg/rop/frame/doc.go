// Package frame is a small in-memory table whose operations return
// rop.Result instead of failing loudly. Every operation runs through the catch
// adapter, so a panic inside a user callback (a filter predicate, a derived
// column) is reported as an *Error naming the operation, like any other
// failure.
//
//	r := rop.AndThen(frame.ReadCSV(file), func(f *frame.Frame) rop.Result[*frame.Frame, error] {
//		return f.Select("vessel", "tonnes")
//	})
package frame
