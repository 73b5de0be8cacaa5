package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionAlreadyOpen   = errors.New("an open work session already exists")
	ErrNoOpenSession        = errors.New("no open work session")
	ErrOutsideCheckInWindow = errors.New(ReasonOutsideWindow)
)
