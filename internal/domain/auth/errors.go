package auth

import "fmt"

// Failure taxonomy for the authentication flows. Every suspension point in
// the controller degrades to one of these kinds instead of crashing the
// polling loop. A biometric non-match is not an error at all; it is the
// expected steady state while scanning and is reported as a value.

// ValidationError reports an empty required field, rejected before any
// network call is issued.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s is required", e.Field)
}

// ConflictError reports a registration rejected by the server, typically a
// duplicate username. The server-provided detail is surfaced to the user and
// the draft is retained for retry.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("registration rejected: %s", e.Detail)
}

// DecodeError reports a malformed or unverifiable third-party identity token.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode identity token: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError reports a network or server failure. It is logged and
// non-fatal: the next natural cycle retries independently.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
