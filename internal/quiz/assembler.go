package quiz

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

// Assembler builds and persists a quiz from a random draw of a category.
type Assembler struct {
	sampler QuestionSampler
	repo    QuizRepository
}

func NewAssembler(sampler QuestionSampler, repo QuizRepository) *Assembler {
	return &Assembler{sampler: sampler, repo: repo}
}

// CreateQuiz validates its inputs before touching storage, in the order
// category, count, title.
func (a *Assembler) CreateQuiz(ctx context.Context, category string, count int, title string) (uuid.UUID, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"category": category,
		"count":    count,
	})

	if err := validateCreate(category, count, title); err != nil {
		log.WithError(err).Warn("Criação de quiz rejeitada")
		return uuid.Nil, err
	}

	questions, err := a.sampler.RandomSample(ctx, category, count)
	if err != nil {
		log.WithError(err).Error("Erro ao sortear perguntas")
		return uuid.Nil, apperror.Storage(err)
	}

	if len(questions) == 0 {
		log.Warn("Nenhuma pergunta para a categoria")
		return uuid.Nil, apperror.NotFound("no questions for category")
	}
	if len(questions) < count {
		log.WithField("available", len(questions)).Warn("Perguntas insuficientes para o quiz")
		return uuid.Nil, apperror.InsufficientData("not enough questions available")
	}

	quiz := NewQuiz(title, questions[:count])
	if err := a.repo.Create(ctx, quiz); err != nil {
		log.WithError(err).Error("Erro ao salvar quiz")
		return uuid.Nil, apperror.Storage(err)
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz criado com sucesso")
	return quiz.ID, nil
}

func validateCreate(category string, count int, title string) error {
	if strings.TrimSpace(category) == "" {
		return apperror.Validation("category required")
	}
	if count <= 0 {
		return apperror.Validation("count must be positive")
	}
	if strings.TrimSpace(title) == "" {
		return apperror.Validation("title required")
	}
	return nil
}
