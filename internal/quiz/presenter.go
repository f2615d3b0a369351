package quiz

import (
	"context"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
)

// Presenter returns a quiz's questions with the right answers stripped.
type Presenter struct {
	repo QuizRepository
}

func NewPresenter(repo QuizRepository) *Presenter {
	return &Presenter{repo: repo}
}

func (p *Presenter) GetQuizQuestions(ctx context.Context, id string) ([]question.View, error) {
	quizID, err := parseID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Busca de quiz rejeitada")
		return nil, err
	}

	quiz, err := loadQuiz(ctx, p.repo, quizID)
	if err != nil {
		return nil, err
	}

	views := make([]question.View, 0, len(quiz.Items))
	for _, item := range quiz.Items {
		views = append(views, item.Question.View())
	}
	return views, nil
}
