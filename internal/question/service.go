package question

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Catalog is the read and write surface over the question bank.
type Catalog interface {
	AllQuestions(ctx context.Context) ([]Question, error)
	ByCategory(ctx context.Context, category string) ([]Question, error)
	RandomSample(ctx context.Context, category string, count int) ([]Question, error)
	AddQuestion(ctx context.Context, q *Question) (*Question, error)
}

type catalog struct {
	repo Repository
}

func NewService(repo Repository) Catalog {
	return &catalog{repo: repo}
}

func (s *catalog) AllQuestions(ctx context.Context) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, apperror.Storage(err)
	}
	return nonNil(questions), nil
}

func (s *catalog) ByCategory(ctx context.Context, category string) ([]Question, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		log.WithError(err).WithField("category", category).Error("Failed to list questions by category")
		return nil, apperror.Storage(err)
	}
	return nonNil(questions), nil
}

// RandomSample returns up to count questions of category. A short result is not an error.
func (s *catalog) RandomSample(ctx context.Context, category string, count int) ([]Question, error) {
	if count <= 0 {
		return []Question{}, nil
	}

	log := config.WithContext(ctx)

	questions, err := s.repo.FindRandomByCategory(ctx, category, count)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"category": category,
			"count":    count,
		}).Error("Failed to sample questions")
		return nil, apperror.Storage(err)
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return nonNil(questions), nil
}

func (s *catalog) AddQuestion(ctx context.Context, q *Question) (*Question, error) {
	log := config.WithContext(ctx)

	if err := Validate(q); err != nil {
		log.WithError(err).Warn("Rejected invalid question")
		return nil, err
	}

	q.ID = uuid.Nil
	if err := s.repo.Save(ctx, q); err != nil {
		log.WithError(err).Error("Failed to save question")
		return nil, apperror.Storage(err)
	}

	log.WithFields(logrus.Fields{
		"question_id": q.ID,
		"category":    q.Category,
	}).Info("Question added")
	return q, nil
}

// Validate reports the first problem that keeps q out of the bank.
func Validate(q *Question) error {
	if q == nil {
		return apperror.Validation("question required")
	}
	if strings.TrimSpace(q.Category) == "" {
		return apperror.Validation("category required")
	}
	if strings.TrimSpace(q.QuestionTitle) == "" {
		return apperror.Validation("question title required")
	}

	hasAnswer := false
	for _, opt := range q.Options() {
		if strings.TrimSpace(opt) == "" {
			return apperror.Validation("all four options required")
		}
		if opt == q.RightAnswer {
			hasAnswer = true
		}
	}
	if !hasAnswer {
		return apperror.Validation("right answer must match one of the options")
	}
	return nil
}

func nonNil(questions []Question) []Question {
	if questions == nil {
		return []Question{}
	}
	return questions
}
