package errors

import "errors"

var (
	ErrRosterNotFound    = errors.New("roster not found")
	ErrStayNotFound      = errors.New("stay info not found")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrBadRosterFormat   = errors.New("unrecognized roster format")
)
