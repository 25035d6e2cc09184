package rop

import "fmt"

// UnwrapError is raised when Unwrap or UnwrapErr is called on the variant
// that does not hold the requested payload. Payload is the other variant's
// content.
type UnwrapError struct {
	Op      string
	Payload any
}

func (e *UnwrapError) Error() string {
	if e.Op == "UnwrapErr" {
		return fmt.Sprintf("called UnwrapErr on an Ok value: %v", e.Payload)
	}
	return fmt.Sprintf("called %s on an Err value: %v", e.Op, e.Payload)
}

func (e *UnwrapError) Unwrap() error {
	return payloadError(e.Payload)
}

// ExpectationError is raised by Expect and ExpectErr.
type ExpectationError struct {
	Message string
	Payload any
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Payload)
}

func (e *ExpectationError) Unwrap() error {
	return payloadError(e.Payload)
}

// VariantMismatchError is raised by IntoOk and IntoErr when the static claim
// about the variant was wrong.
type VariantMismatchError struct {
	Op      string
	Want    string
	Payload any
}

func (e *VariantMismatchError) Error() string {
	have := "Err"
	if e.Want == "Err" {
		have = "Ok"
	}
	return fmt.Sprintf("called %s on %s variant: %v", e.Op, have, e.Payload)
}

func (e *VariantMismatchError) Unwrap() error {
	return payloadError(e.Payload)
}

func payloadError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return nil
}
