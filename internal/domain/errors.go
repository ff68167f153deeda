package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrSwipeNotFound = errors.New("swipe not found")
	ErrMatchNotFound = errors.New("match not found")

	// ErrAlreadySwiped rejects a repeat swipe on the same target. The
	// original row is never overwritten, so a pass cannot be retried
	// into a like.
	ErrAlreadySwiped = errors.New("already swiped on this target")

	// ErrMatchAlreadyExists is returned by the match repository when the
	// pair uniqueness constraint fires. Callers treat it as "the
	// concurrent request won" and fetch the existing match.
	ErrMatchAlreadyExists = errors.New("match already exists")

	// ErrForbidden covers both "match does not exist" and "caller is not
	// a member" so the response never leaks resource existence.
	ErrForbidden = errors.New("not authorized for this match")

	ErrCannotSwipeSelf = errors.New("cannot swipe on yourself")
	ErrEmptyContent    = errors.New("message content must not be empty")
	ErrInvalidAction   = errors.New("invalid swipe action")
	ErrInvalidTarget   = errors.New("invalid target type")
)
