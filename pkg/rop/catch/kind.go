package catch

import (
	"errors"
	"fmt"
)

// Kind classifies a raised failure. It reports true for failures that should
// be turned into Err.
type Kind func(err error) bool

// Is matches failures that wrap target.
func Is(target error) Kind {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches failures that have an E in their chain.
func As[E error]() Kind {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// Match adapts an arbitrary predicate.
func Match(f func(error) bool) Kind {
	return Kind(f)
}

// Panics matches panics whose value was not an error.
func Panics() Kind {
	return As[*PanicError]()
}

func intercepts(err error, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k != nil && k(err) {
			return true
		}
	}
	return false
}

// PanicError holds a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PipelineError names the operation a caught failure came from.
type PipelineError struct {
	Op  string
	Err error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
