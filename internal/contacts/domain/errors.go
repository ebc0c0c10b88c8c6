package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the register wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrInvalidArgument reports a required input that was not supplied.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConstraintViolation reports an input that is present but breaks a domain rule.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrInvalidState reports a record that exists but is on the wrong side of now.
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrContactsRequired = fmt.Errorf("%w: contacts cannot be nil", ErrInvalidArgument)
	ErrContactRequired  = fmt.Errorf("%w: contact cannot be empty", ErrInvalidArgument)
	ErrDateRequired     = fmt.Errorf("%w: date cannot be zero", ErrInvalidArgument)
	ErrIDsRequired      = fmt.Errorf("%w: ids cannot be nil", ErrInvalidArgument)

	ErrInvalidContactID = fmt.Errorf("%w: contact id must be greater than zero", ErrConstraintViolation)
	ErrInvalidMeetingID = fmt.Errorf("%w: meeting id must be greater than zero", ErrConstraintViolation)
	ErrEmptyName        = fmt.Errorf("%w: name cannot be empty", ErrConstraintViolation)
	ErrEmptyNotes       = fmt.Errorf("%w: notes cannot be empty", ErrConstraintViolation)
	ErrNoParticipants   = fmt.Errorf("%w: the set of contacts must have at least one contact", ErrConstraintViolation)
	ErrDateNotInFuture  = fmt.Errorf("%w: date must be in the future", ErrConstraintViolation)
	ErrDateInFuture     = fmt.Errorf("%w: date must not be in the future", ErrConstraintViolation)
	ErrUnknownContact   = fmt.Errorf("%w: contact is not registered, add it with AddNewContact first", ErrConstraintViolation)
	ErrMeetingNotFound  = fmt.Errorf("%w: meeting does not exist", ErrConstraintViolation)
	ErrContactMismatch  = fmt.Errorf("%w: contact does not match the registered record", ErrConstraintViolation)

	ErrMeetingInFuture = fmt.Errorf("%w: meeting has a date in the future", ErrInvalidState)
	ErrMeetingInPast   = fmt.Errorf("%w: meeting has already taken place", ErrInvalidState)
)

// ErrSnapshotNotFound is returned by snapshot stores when nothing has been flushed yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// UnknownContactError names the contact that failed the referential integrity check.
func UnknownContactError(id int) error {
	return fmt.Errorf("%w (contact id %d)", ErrUnknownContact, id)
}

// ContactMismatchError names a contact whose id is registered but whose
// name or notes differ from the registered record.
func ContactMismatchError(id int) error {
	return fmt.Errorf("%w (contact id %d)", ErrContactMismatch, id)
}

// MeetingNotFoundError names the meeting id that could not be found.
func MeetingNotFoundError(id int) error {
	return fmt.Errorf("%w (meeting id %d)", ErrMeetingNotFound, id)
}
