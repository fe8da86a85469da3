package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Transport-level failure classes. Every backend call resolves to one
// of these (or succeeds); callers branch with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("backend unreachable")

	// ErrRequestRejected covers the remaining 4xx answers, typically
	// the backend's own validation of a payload it did not like.
	ErrRequestRejected = errors.New("request rejected")
)

var (
	ErrNoSession        = errors.New("no active session")
	ErrTokenExpired     = errors.New("session token expired")
	ErrPermissionDenied = errors.New("permission denied")
)

// ErrValidation is the base of every local pre-network check; the
// specific sentinels below all wrap it.
var ErrValidation = errors.New("validation")

var (
	ErrSpaceRequired     = fmt.Errorf("%w: space is required", ErrValidation)
	ErrDateRequired      = fmt.Errorf("%w: date is required", ErrValidation)
	ErrDateInPast        = fmt.Errorf("%w: date must not be in the past", ErrValidation)
	ErrStartTimeRequired = fmt.Errorf("%w: start time is required", ErrValidation)
	ErrEndTimeRequired   = fmt.Errorf("%w: end time is required", ErrValidation)
	ErrTimeOrder         = fmt.Errorf("%w: start time must be before end time", ErrValidation)

	ErrNameRequired     = fmt.Errorf("%w: name is required", ErrValidation)
	ErrCapacityInvalid  = fmt.Errorf("%w: capacity must be a positive integer", ErrValidation)
	ErrSpaceTypeUnknown = fmt.Errorf("%w: unknown space type", ErrValidation)

	ErrEmailRequired      = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmailInvalidFormat = fmt.Errorf("%w: incorrect email format", ErrValidation)
	ErrEmailInvalidLen    = fmt.Errorf("%w: email length exceeds 255 characters", ErrValidation)
	ErrPasswordRequired   = fmt.Errorf("%w: password is required", ErrValidation)

	ErrStatusUnknown    = fmt.Errorf("%w: unknown reservation status", ErrValidation)
	ErrStatusTransition = fmt.Errorf("%w: reservation status can no longer change", ErrValidation)
)

// ConflictError carries the 409 payload of an availability query: the
// backend answers "not available" together with the reservations that
// occupy the slot.
type ConflictError struct {
	Message   string
	Conflicts []ReservationConflict
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return ErrConflict.Error()
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// APIError preserves the human-readable message the backend attached
// to a failed response, on top of the failure class.
type APIError struct {
	Class   error
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Class, e.Status)
	}

	return fmt.Sprintf("%s (status %d): %s", e.Class, e.Status, e.Message)
}

func (e *APIError) Is(target error) bool { return errors.Is(e.Class, target) }

func (e *APIError) Unwrap() error { return e.Class }

// UserMessage extracts the most specific human-readable text from an
// error chain, for terminal display.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) && conflictErr.Message != "" {
		return conflictErr.Message
	}

	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, ErrValidation.Error()+": "); ok {
		return cut
	}

	return msg
}
