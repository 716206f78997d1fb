// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesToServe is returned by NewHandlers when the service set is
// missing. Without it no route of the progress API could answer.
var errNoServicesToServe = errors.New("no services to serve: progress api handlers not created")
