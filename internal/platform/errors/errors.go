package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNoGoalConfig = errors.New("no goal configuration")
	ErrNoCheckins   = errors.New("no check-ins recorded")
)
