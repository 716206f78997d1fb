package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrParentNotFound:          http.StatusBadRequest,
	service.ErrPlannerCycle:            http.StatusBadRequest,
	service.ErrCorruptedDocument:       http.StatusInternalServerError,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,
	store.ErrUnknownOwner:  http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingData:     http.StatusInternalServerError,

	utils.ErrEmptyBody:     http.StatusBadRequest,
	ErrInvalidDayParameter: http.StatusBadRequest,
	ErrInvalidRange:        http.StatusBadRequest,
	ErrNoUserInContext:     http.StatusUnauthorized,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server errors are
// reported with the generic status text so internals do not leak.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
