package service

import "errors"

var (
	// ErrMailDisabled is returned when no SMTP host is configured.
	ErrMailDisabled = errors.New("mail delivery is not configured")
	// ErrMailUnavailable wraps a failed or short-circuited SMTP delivery.
	ErrMailUnavailable = errors.New("mail delivery unavailable")
)
