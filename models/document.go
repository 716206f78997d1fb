package models

import "time"

// Document is the storage envelope shared by todos, journal entries and
// planner pages. Indexable columns live next to the JSONB Data payload,
// whose sensitive fields are already encrypted.
type Document struct {
	ID       string
	UserID   string
	Day      *time.Time
	ParentID *string
	Data     Record

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocumentFilter narrows a document listing. UserID is mandatory; every
// other criterion is optional.
type DocumentFilter struct {
	UserID string

	// From and To bound Day inclusively.
	From *time.Time
	To   *time.Time

	// ParentID selects children of a page. RootsOnly selects pages without a
	// parent and is ignored when ParentID is set.
	ParentID  *string
	RootsOnly bool
}
