package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	_ "github.com/saulo-duarte/quiz-lambda/internal/docs"
	"github.com/saulo-duarte/quiz-lambda/internal/middlewares"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
)

type RouterConfig struct {
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
	AllowedOrigins  []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/question", question.Routes(cfg.QuestionHandler))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	})
	return r
}
