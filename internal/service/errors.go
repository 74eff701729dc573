package service

import "errors"

var (
	// ErrIndexOutOfRange reports a stale list index; the caller should
	// refetch current state before retrying.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDuplicateReviewer reports that the phase already carries a
	// reviewer for that role.
	ErrDuplicateReviewer = errors.New("reviewer role already present on phase")

	// ErrReviewerNotFound reports a stale reviewer id.
	ErrReviewerNotFound = errors.New("reviewer not found")

	// ErrInvalidReviewStatus reports a status outside approved/rejected
	// passed to a status transition.
	ErrInvalidReviewStatus = errors.New("review status must be approved or rejected")

	// ErrNegativeBudget reports a budget update carrying a negative
	// amount.
	ErrNegativeBudget = errors.New("budget amounts must be non-negative")

	// ErrEmptyName reports a blank project name on creation.
	ErrEmptyName = errors.New("project name is required")

	// ErrInvalidSectionKey reports a malformed section key or one naming
	// an unknown section.
	ErrInvalidSectionKey = errors.New("invalid section key")
)
