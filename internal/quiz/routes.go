package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.CreateQuiz)
	r.Get("/get/{id}", h.GetQuizQuestions)
	r.Post("/submit/{id}", h.SubmitQuiz)
	return r
}
