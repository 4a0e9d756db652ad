package courses

import (
	"errors"
	"fmt"
)

// ErrAlreadyExists is returned by a Classroom implementation when a teacher or student
// is already attached to a course.
var ErrAlreadyExists = errors.New("already exists")

type ValidationError struct {
	Raw string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("course name is empty or undefined. raw value: %q", e.Raw)
}

type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

type BulkWriteError struct {
	Op  string
	Err error
}

func (e *BulkWriteError) Error() string {
	return fmt.Sprintf("%v failed (%v)", e.Op, e.Err)
}

func (e *BulkWriteError) Unwrap() error {
	return e.Err
}

// message returns the text recorded in the audit log for an error.
func message(err error) string {
	var remote *RemoteCallError

	switch {
	case err == nil:
		return "unknown error"

	case errors.As(err, &remote):
		return remote.Err.Error()

	default:
		return err.Error()
	}
}
