package assistant

import "fmt"

// ResponseError reports a model reply that could not be used.
type ResponseError struct {
	Op      string
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
