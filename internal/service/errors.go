package service

import "errors"

var (
	// ErrPlanNotParsed indicates the stored path only has raw model
	// output and cannot be continued or tracked.
	ErrPlanNotParsed = errors.New("plan was never parsed; raw output only")

	// ErrNothingToContinue indicates the path already covers its
	// requested duration (or the duration was unparseable).
	ErrNothingToContinue = errors.New("path already covers its requested duration")

	// ErrTaskNotFound indicates the (day, title) pair is not in the plan.
	ErrTaskNotFound = errors.New("task not found in plan")

	// ErrInvalidRating indicates a rating outside {helpful, not helpful}.
	ErrInvalidRating = errors.New("invalid rating")
)
