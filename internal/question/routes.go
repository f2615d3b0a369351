package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/all", h.GetAllQuestions)
	r.Get("/category/{category}", h.GetQuestionsByCategory)
	r.Post("/add", h.AddQuestion)
	return r
}
