package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.NotFound(hideRoute)
	router.MethodNotAllowed(hideRoute)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/profile", h.getProfile)
		r.Put("/api/user/profile", h.updateProfile)

		r.Route("/api/todos", func(r chi.Router) {
			r.Get("/", h.listTodos)
			r.Post("/", h.createTodo)
			r.Put("/{id}", h.updateTodo)
			r.Delete("/{id}", h.deleteTodo)
			r.Patch("/{id}/completion", h.setTodoCompleted)
		})

		r.Route("/api/journal", func(r chi.Router) {
			r.Get("/", h.listJournalEntries)
			r.Get("/{day}", h.getJournalEntry)
			r.Put("/{day}", h.saveJournalEntry)
			r.Delete("/{day}", h.deleteJournalEntry)
		})

		r.Route("/api/planner", func(r chi.Router) {
			r.Get("/", h.listPlannerPages)
			r.Post("/", h.createPlannerPage)
			r.Get("/{id}", h.getPlannerPage)
			r.Put("/{id}", h.updatePlannerPage)
			r.Delete("/{id}", h.deletePlannerPage)
		})

		r.Route("/api/progress", func(r chi.Router) {
			r.Get("/", h.getProgress)
			r.Get("/streak", h.getStreak)
			r.Get("/history", h.getHistory)
			r.Post("/history", h.recordDay)
		})
	})

	return router
}
