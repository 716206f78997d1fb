// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by request parsing in this package. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidDayParameter is returned for day values that are not
	// formatted as YYYY-MM-DD.
	ErrInvalidDayParameter = errors.New("day must be formatted as YYYY-MM-DD")

	// ErrInvalidRange is returned when "from" is after "to".
	ErrInvalidRange = errors.New("from must not be after to")
)
