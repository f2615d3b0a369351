package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"gorm.io/gorm"
)

// Quiz is immutable once created. Items are ordered by Position and that
// order is what submitted responses are graded against.
type Quiz struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Items     []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

type QuizQuestion struct {
	QuizID     uuid.UUID         `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	Position   int               `gorm:"primaryKey;autoIncrement:false" json:"position"`
	QuestionID uuid.UUID         `gorm:"type:uuid;not null;index" json:"question_id"`
	Question   question.Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"question"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func NewQuiz(title string, questions []question.Question) *Quiz {
	items := make([]QuizQuestion, len(questions))
	for i, q := range questions {
		items[i] = QuizQuestion{
			Position:   i,
			QuestionID: q.ID,
			Question:   q,
		}
	}
	return &Quiz{Title: title, Items: items}
}

// Questions returns the quiz questions in their fixed order.
func (q *Quiz) Questions() []question.Question {
	out := make([]question.Question, len(q.Items))
	for i, item := range q.Items {
		out[i] = item.Question
	}
	return out
}

// Response is one submitted answer. ID is informational; grading is positional.
type Response struct {
	ID       string  `json:"id,omitempty" example:"7a1c9a5e-2f43-4c1b-9d0d-6c3f0f6f2b11"`
	Response *string `json:"response" example:"final"`
}
