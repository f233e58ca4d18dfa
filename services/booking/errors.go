package booking

import "errors"

var (
	// ErrSessionNotFound covers missing and expired booking sessions.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrStaleResponse marks an availability computation finished after the
	// selection moved on. The result is discarded; the newer request owns the
	// session.
	ErrStaleResponse = errors.New("availability superseded by a newer selection")

	// ErrSubmissionInFlight rejects a confirm while another one holds the
	// submit lock for the same session.
	ErrSubmissionInFlight = errors.New("a submission for this session is already in flight")

	// ErrNoTimeSelected rejects a confirm before a time was chosen.
	ErrNoTimeSelected = errors.New("no time selected for this session")

	// ErrInvalidSelection rejects a doctor/date/type triple the engine cannot
	// work with.
	ErrInvalidSelection = errors.New("doctor, date and slot type are required")
)
