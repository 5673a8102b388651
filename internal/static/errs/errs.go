package errs

import "errors"

var (
	NotFound           = errors.New("not found")
	InvalidSession     = errors.New("invalid or stale session")
	InvalidState       = errors.New("invalid or consumed login state")
	UpstreamFailure    = errors.New("upstream failure")
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	FailedToCreateUser = errors.New("failed to create user")
)
