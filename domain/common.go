package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedResolveUser    = "failed to resolve user"

	ErrParseUUID    = errors.New("failed to parse UUID")
	ErrUserNotFound = errors.New("user not found")
)
