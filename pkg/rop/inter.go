package rop

// Outcome is satisfied by every Result instantiation. It lets code count or
// route results without knowing their payload types.
type Outcome interface {
	// IsOk reports the success variant
	IsOk() bool
	// IsErr reports the failure variant
	IsErr() bool
	String() string
}

// Provider exposes both payloads through the destructuring accessors.
type Provider[T, E any] interface {
	Outcome
	// Ok returns the value and true for the success variant
	Ok() (T, bool)
	// Err returns the error and true for the failure variant
	Err() (E, bool)
}

var _ Provider[int, error] = Result[int, error]{}

// CountOk returns how many of the outcomes are Ok.
func CountOk[O Outcome](outcomes []O) int {
	n := 0
	for _, o := range outcomes {
		if o.IsOk() {
			n++
		}
	}
	return n
}
