package http

import (
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	progress, err := h.services.ProgressService.Progress(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "error getting progress")
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) getStreak(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	result, err := h.services.ProgressService.Streak(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "error calculating streak")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	from, to, err := h.rangeParams(r)
	if err != nil {
		writeError(w, r, err, "invalid range parameters")
		return
	}

	history, err := h.services.ProgressService.History(r.Context(), uid, from, to)
	if err != nil {
		writeError(w, r, err, "error listing completion history")
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

// recordDay stores a client-computed summary of one day.
func (h *Handler) recordDay(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var entry models.CompletionHistoryEntry
	if err = utils.DecodeJSON(r, &entry); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	entry.UserID = uid

	recorded, err := h.services.ProgressService.RecordDay(r.Context(), entry)
	if err != nil {
		writeError(w, r, err, "error recording day")
		return
	}

	utils.WriteJSON(w, recorded, http.StatusOK)
}
