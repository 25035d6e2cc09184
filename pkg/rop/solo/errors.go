package solo

// ValidationError reports a value rejected by a validation step.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
