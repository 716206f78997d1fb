package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// listTodos returns the todos of ?day=YYYY-MM-DD, today by default.
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	day, err := h.dayParam(r.URL.Query().Get("day"))
	if err != nil {
		writeError(w, r, err, "invalid day parameter")
		return
	}
	if day.IsZero() {
		day = h.calc.Today()
	}

	todos, err := h.services.TodoService.ListTodos(r.Context(), uid, day)
	if err != nil {
		writeError(w, r, err, "error listing todos")
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var todo models.Todo
	if err = utils.DecodeJSON(r, &todo); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	todo.UserID = uid

	created, err := h.services.TodoService.CreateTodo(r.Context(), todo)
	if err != nil {
		writeError(w, r, err, "error creating todo")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var todo models.Todo
	if err = utils.DecodeJSON(r, &todo); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}
	todo.ID = chi.URLParam(r, "id")
	todo.UserID = uid

	updated, err := h.services.TodoService.UpdateTodo(r.Context(), todo)
	if err != nil {
		writeError(w, r, err, "error updating todo")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) setTodoCompleted(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	var update models.CompletionUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, withInvalidData(err), "invalid JSON was passed")
		return
	}

	todo, err := h.services.TodoService.SetCompleted(r.Context(), uid, chi.URLParam(r, "id"), update.Completed)
	if err != nil {
		writeError(w, r, err, "error setting todo completion")
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	uid, err := userID(r)
	if err != nil {
		writeError(w, r, err, "no user in context")
		return
	}

	if err = h.services.TodoService.DeleteTodo(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "error deleting todo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
