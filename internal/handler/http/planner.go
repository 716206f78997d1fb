package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// listPlannerPages returns the children of ?parent=, or the root pages.
func (h *Handler) listPlannerPages(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var parentID *string
	if parent := r.URL.Query().Get("parent"); parent != "" {
		parentID = &parent
	}

	pages, err := h.services.PlannerService.ListPages(r.Context(), uid, parentID)
	if err != nil {
		writeError(w, r, err, "error listing planner pages")
		return
	}

	utils.WriteJSON(w, pages, http.StatusOK)
}

func (h *Handler) createPlannerPage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var page models.PlannerPage
	if err = utils.DecodeJSON(r, &page); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	page.UserID = uid

	created, err := h.services.PlannerService.CreatePage(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "error creating planner page")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPlannerPage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	page, err := h.services.PlannerService.GetPage(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "error getting planner page")
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updatePlannerPage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var page models.PlannerPage
	if err = utils.DecodeJSON(r, &page); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	page.ID = chi.URLParam(r, "id")
	page.UserID = uid

	updated, err := h.services.PlannerService.UpdatePage(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "error updating planner page")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePlannerPage(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	if err = h.services.PlannerService.DeletePage(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting planner page")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
