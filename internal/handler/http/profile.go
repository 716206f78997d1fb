package http

import (
	"net/http"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "error getting profile")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var user models.User
	if err = utils.DecodeJSON(r, &user); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	user.UserID = uid

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "error updating profile")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
