package quiz

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
)

// QuestionSampler draws up to count random questions from a category.
type QuestionSampler interface {
	RandomSample(ctx context.Context, category string, count int) ([]question.Question, error)
}

type QuizService interface {
	CreateQuiz(ctx context.Context, category string, count int, title string) (uuid.UUID, error)
	GetQuizQuestions(ctx context.Context, id string) ([]question.View, error)
	CalculateResult(ctx context.Context, id string, responses []Response) (int, error)
}

type quizService struct {
	*Assembler
	*Presenter
	*Grader
}

func NewService(repo QuizRepository, sampler QuestionSampler) QuizService {
	return &quizService{
		Assembler: NewAssembler(sampler, repo),
		Presenter: NewPresenter(repo),
		Grader:    NewGrader(repo),
	}
}

func parseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apperror.Validation("quiz id required")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperror.Validation("invalid quiz id")
	}
	return id, nil
}

func loadQuiz(ctx context.Context, repo QuizRepository, id uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx).WithField("quiz_id", id)

	quiz, err := repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar quiz")
		return nil, apperror.Storage(err)
	}
	if quiz == nil {
		log.Warn("Quiz não encontrado")
		return nil, apperror.NotFound("quiz not found")
	}
	return quiz, nil
}
