package http

import "fmt"

// MissingFieldError is returned by BuildRequest for the first required field
// that is absent. For "method" it is also returned when the value is not a
// known verb; Value then holds the rejected token.
type MissingFieldError struct {
	Field string
	Value string
}

func (e *MissingFieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s information: unrecognized verb %q", e.Field, e.Value)
	}
	return fmt.Sprintf("missing %s information", e.Field)
}

// TransportError wraps any failure while sending the request or reading
// its body, including a body that is not valid UTF-8.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
