package frame

import (
	"errors"
	"fmt"

	"github.com/ib-77/rop-result/pkg/rop"
	"github.com/ib-77/rop-result/pkg/rop/catch"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrShape           = errors.New("shape mismatch")
)

// Error is the failure payload of every frame operation.
type Error struct {
	Op     string
	Column string
	Err    error
}

func (e *Error) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("frame: %s failed: column %q: %v", e.Op, e.Column, e.Err)
	}
	return fmt.Sprintf("frame: %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func columnError(column string, err error) error {
	return &Error{Column: column, Err: err}
}

// run adapts fn and names every failure after op.
func run[T any](op string, fn func() (T, error)) rop.Result[T, error] {
	return rop.MapErr(catch.Try(fn), func(err error) error {
		var fe *Error
		if errors.As(err, &fe) && fe.Op == "" {
			fe.Op = op
			return fe
		}
		return &Error{Op: op, Err: err}
	})
}
