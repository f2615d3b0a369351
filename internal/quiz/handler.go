package quiz

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

type CreateQuizResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// CreateQuiz godoc
// @Summary Create a new quiz
// @Description Creates a quiz with the given number of random questions from a category
// @Tags quiz
// @Produce json
// @Param category query string true "Category of questions" example(Java)
// @Param numQ query int true "Number of questions in the quiz" example(5)
// @Param title query string true "Title of the quiz" example(Java Basics Quiz)
// @Success 201 {object} CreateQuizResponse
// @Failure 400 {object} config.ErrorResponse
// @Failure 404 {object} config.ErrorResponse
// @Failure 422 {object} config.ErrorResponse
// @Failure 500 {object} config.ErrorResponse
// @Router /quiz/create [post]
func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	numQ, err := strconv.Atoi(strings.TrimSpace(r.FormValue("numQ")))
	if err != nil {
		log.WithError(err).Warn("numQ inválido para criar quiz")
		config.WriteError(w, apperror.Validation("count must be an integer"))
		return
	}

	id, err := h.service.CreateQuiz(r.Context(), r.FormValue("category"), numQ, r.FormValue("title"))
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, CreateQuizResponse{
		ID:      id,
		Message: "Quiz created successfully",
	})
}

// GetQuizQuestions godoc
// @Summary Get quiz questions
// @Description Returns the questions of a quiz without their right answers
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {array} question.View
// @Failure 400 {object} config.ErrorResponse
// @Failure 404 {object} config.ErrorResponse
// @Failure 500 {object} config.ErrorResponse
// @Router /quiz/get/{id} [get]
func (h *Handler) GetQuizQuestions(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.GetQuizQuestions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, views)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades the responses by position and returns the number of right answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param responses body []Response true "Responses in question order"
// @Success 200 {integer} int
// @Failure 400 {object} config.ErrorResponse
// @Failure 404 {object} config.ErrorResponse
// @Failure 500 {object} config.ErrorResponse
// @Router /quiz/submit/{id} [post]
func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var responses []Response
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)).Decode(&responses); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para enviar quiz")
		config.WriteError(w, apperror.Validation("invalid request body"))
		return
	}

	score, err := h.service.CalculateResult(r.Context(), chi.URLParam(r, "id"), responses)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, score)
}
