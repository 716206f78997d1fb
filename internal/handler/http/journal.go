package http

import (
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

func (h *Handler) listJournalEntries(w http.ResponseWriter, r *http.Request) {
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

	entries, err := h.services.JournalService.ListEntries(r.Context(), uid, from, to)
	if err != nil {
		writeError(w, r, err, "error listing journal entries")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getJournalEntry(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	day, err := h.pathDay(r)
	if err != nil {
		writeError(w, r, err, "invalid day parameter")
		return
	}

	entry, err := h.services.JournalService.GetEntry(r.Context(), uid, day)
	if err != nil {
		writeError(w, r, err, "error getting journal entry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// saveJournalEntry creates or replaces the entry of the day in the path.
func (h *Handler) saveJournalEntry(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	day, err := h.pathDay(r)
	if err != nil {
		writeError(w, r, err, "invalid day parameter")
		return
	}

	var entry models.JournalEntry
	if err = utils.DecodeJSON(r, &entry); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	entry.UserID = uid
	entry.Day = day

	saved, err := h.services.JournalService.SaveEntry(r.Context(), entry)
	if err != nil {
		writeError(w, r, err, "error saving journal entry")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	day, err := h.pathDay(r)
	if err != nil {
		writeError(w, r, err, "invalid day parameter")
		return
	}

	if err = h.services.JournalService.DeleteEntry(r.Context(), uid, day); err != nil {
		writeError(w, r, err, "error deleting journal entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
