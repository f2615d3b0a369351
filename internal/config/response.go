package config

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
)

// MaxBodyBytes caps the size of decoded request bodies.
const MaxBodyBytes int64 = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

func StatusCode(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInsufficientData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps a core outcome to its HTTP status.
func WriteError(w http.ResponseWriter, err error) {
	JSON(w, StatusCode(err), ErrorResponse{Error: apperror.Message(err)})
}
