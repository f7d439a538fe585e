package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// OutOfRangeError reports an index outside a roster or segment list.
type OutOfRangeError struct {
	Collection string
	Index      int
	Len        int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Collection, e.Index, e.Len)
}

// IncompleteCartError names the first segment/passenger that blocks submission.
// Segment is -1 when the failing rule is not tied to a segment.
type IncompleteCartError struct {
	Segment   int    `json:"segment"`
	Passenger int    `json:"passenger"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
}

func (e IncompleteCartError) Error() string {
	if e.Segment >= 0 {
		return fmt.Sprintf("segment %d passenger %d: %s %s", e.Segment, e.Passenger, e.Field, e.Reason)
	}
	return fmt.Sprintf("passenger %d: %s %s", e.Passenger, e.Field, e.Reason)
}

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UpstreamError wraps a failure returned by an external collaborator
// (flight lookup, seat lookup, booking API). The cause is kept intact.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op + ": upstream failure"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsOutOfRange(err error) bool {
	var target OutOfRangeError
	return errors.As(err, &target)
}

func IsIncompleteCart(err error) bool {
	var target IncompleteCartError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
