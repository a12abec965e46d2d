package service

import "errors"

// Failure categories surfaced to callers. Store failures are not in this
// list; they propagate as wrapped errors from the repositories.
var (
	// ErrValidation means a required input is missing or malformed.
	ErrValidation = errors.New("missing or invalid input")

	// ErrNotAllowed means the acting user is not a party permitted to
	// perform this transition.
	ErrNotAllowed = errors.New("not permitted for this user")

	// ErrInvalidState means the transition is not legal from the record's
	// current status.
	ErrInvalidState = errors.New("not allowed from current status")

	// ErrDuplicateRequest means the pair already has a pending or
	// accepted relationship.
	ErrDuplicateRequest = errors.New("an active mentorship request already exists")

	// ErrNotRegistered means the acting user has no mentee record.
	ErrNotRegistered = errors.New("user is not registered as a mentee")

	// ErrSlotUnavailable means the requested slot does not exist, belongs
	// to another mentor, or is no longer open.
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrAlreadyBooked means a concurrent booking claimed the slot first.
	ErrAlreadyBooked = errors.New("slot is already booked")

	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
)
