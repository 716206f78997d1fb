package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrParentNotFound    = errors.New("parent page not found")
	ErrPlannerCycle      = errors.New("page cannot be moved under its own descendant")
	ErrCorruptedDocument = errors.New("stored document cannot be decoded")
)
