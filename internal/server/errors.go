// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPHandler means the handler set carries no HTTP router for the
	// progress API.
	errNoHTTPHandler = errors.New("no http handler for the progress api")
	// errNoHTTPAddress means SERVER_ADDRESS (or -a) was left empty.
	errNoHTTPAddress = errors.New("http address of the progress api is not configured")
)
