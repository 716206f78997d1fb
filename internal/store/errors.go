package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query expected to match exactly one
	// record (scoped to its owner) produces an empty result set, or when an
	// UPDATE or DELETE affects no rows.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when an INSERT violates a unique
	// constraint, e.g. a second journal entry for the same day.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnknownOwner is returned when a record references a user that does
	// not exist (foreign key violation).
	ErrUnknownOwner = errors.New("record owner does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingData is returned when a document body cannot be converted
	// to or from its JSONB representation.
	ErrEncodingData = errors.New("failed to encode document data")
)
