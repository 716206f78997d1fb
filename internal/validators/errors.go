package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidID         = errors.New("invalid id")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrTextTooLong       = errors.New("text is too long")
	ErrInvalidPoints     = errors.New("points must not be negative")
	ErrInvalidDay        = errors.New("day is required")
	ErrInvalidMood       = errors.New("unknown mood")
	ErrSelfParent        = errors.New("page cannot be its own parent")
	ErrInvalidParentID   = errors.New("invalid parent id")
	ErrInvalidBlockType  = errors.New("unknown content block type")
	ErrInvalidCounts     = errors.New("completion counts are inconsistent")
	ErrStartDateInFuture = errors.New("start date cannot be in the future")
)
