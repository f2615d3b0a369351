package question

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
)

type Handler struct {
	service Catalog
}

func NewHandler(s Catalog) *Handler {
	return &Handler{service: s}
}

// GetAllQuestions godoc
// @Summary List all questions
// @Tags question
// @Produce json
// @Success 200 {array} Question
// @Failure 500 {object} config.ErrorResponse
// @Router /question/all [get]
func (h *Handler) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.AllQuestions(r.Context())
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Tags question
// @Produce json
// @Param category path string true "Category" example(Java)
// @Success 200 {array} Question
// @Failure 500 {object} config.ErrorResponse
// @Router /question/category/{category} [get]
func (h *Handler) GetQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	questions, err := h.service.ByCategory(r.Context(), category)
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

// AddQuestion godoc
// @Summary Add a question to the bank
// @Tags question
// @Accept json
// @Produce json
// @Param question body CreateQuestionDTO true "Question"
// @Success 201 {object} Question
// @Failure 400 {object} config.ErrorResponse
// @Failure 500 {object} config.ErrorResponse
// @Router /question/add [post]
func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuestionDTO
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for add question")
		config.WriteError(w, apperror.Validation("invalid request body"))
		return
	}

	created, err := h.service.AddQuestion(r.Context(), dto.toEntity())
	if err != nil {
		config.WriteError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, created)
}
