// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
)

// hideRoute answers unknown paths and known paths called with an unrouted
// method alike, so callers cannot probe which routes exist. chi would
// otherwise reply 405 with an Allow header for the latter.
func hideRoute(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route")

	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
