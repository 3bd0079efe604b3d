package service

import "errors"

var (
	ErrNotAtFinalStep          = errors.New("application can only be submitted from the confirmation step")
	ErrInvalidStatusTransition = errors.New("invalid application status transition")
)
