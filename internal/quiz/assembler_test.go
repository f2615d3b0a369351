package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("ExactCount", func(t *testing.T) {
		general := makeQuestions("general", 5)
		sampler := &fakeSampler{byCategory: map[string][]question.Question{"general": general}}
		repo := newFakeQuizRepo()
		a := quiz.NewAssembler(sampler, repo)

		id, err := a.CreateQuiz(ctx, "general", 3, "Sample")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		saved := repo.quizzes[id]
		require.NotNil(t, saved)
		assert.Equal(t, "Sample", saved.Title)
		require.Len(t, saved.Items, 3)
		for i, item := range saved.Items {
			assert.Equal(t, i, item.Position)
			assert.Equal(t, general[i].ID, item.QuestionID)
			assert.Equal(t, general[i], item.Question)
		}
	})

	t.Run("AllAvailable", func(t *testing.T) {
		sampler := &fakeSampler{byCategory: map[string][]question.Question{"go": makeQuestions("go", 4)}}
		repo := newFakeQuizRepo()

		id, err := quiz.NewAssembler(sampler, repo).CreateQuiz(ctx, "go", 4, "Go")
		require.NoError(t, err)
		assert.Len(t, repo.quizzes[id].Items, 4)
	})

	t.Run("NoQuestions", func(t *testing.T) {
		sampler := &fakeSampler{byCategory: map[string][]question.Question{}}
		repo := newFakeQuizRepo()

		_, err := quiz.NewAssembler(sampler, repo).CreateQuiz(ctx, "history", 3, "History")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("InsufficientQuestions", func(t *testing.T) {
		sampler := &fakeSampler{byCategory: map[string][]question.Question{"go": makeQuestions("go", 2)}}
		repo := newFakeQuizRepo()

		_, err := quiz.NewAssembler(sampler, repo).CreateQuiz(ctx, "go", 3, "Go")
		assert.ErrorIs(t, err, apperror.ErrInsufficientData)
		assert.NotErrorIs(t, err, apperror.ErrNotFound)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("SamplerFailure", func(t *testing.T) {
		sampler := &fakeSampler{err: errors.New("connection reset")}
		_, err := quiz.NewAssembler(sampler, newFakeQuizRepo()).CreateQuiz(ctx, "go", 1, "Go")
		assert.ErrorIs(t, err, apperror.ErrStorage)
	})

	t.Run("SaveFailure", func(t *testing.T) {
		sampler := &fakeSampler{byCategory: map[string][]question.Question{"go": makeQuestions("go", 1)}}
		repo := newFakeQuizRepo()
		repo.createErr = errors.New("constraint violation")

		id, err := quiz.NewAssembler(sampler, repo).CreateQuiz(ctx, "go", 1, "Go")
		assert.ErrorIs(t, err, apperror.ErrStorage)
		assert.Equal(t, uuid.Nil, id)
		assert.Empty(t, repo.quizzes)
	})
}

func TestCreateQuizValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		count    int
		title    string
		message  string
	}{
		{"EmptyCategory", "", 3, "Sample", "category required"},
		{"BlankCategory", "   ", 3, "Sample", "category required"},
		{"ZeroCount", "general", 0, "Sample", "count must be positive"},
		{"NegativeCount", "general", -2, "Sample", "count must be positive"},
		{"EmptyTitle", "general", 3, "", "title required"},
		{"BlankTitle", "general", 3, "\t ", "title required"},
		{"CategoryWinsOverCount", "", 0, "", "category required"},
		{"CountWinsOverTitle", "general", 0, "", "count must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := &fakeSampler{byCategory: map[string][]question.Question{"general": makeQuestions("general", 5)}}
			repo := newFakeQuizRepo()

			_, err := quiz.NewAssembler(sampler, repo).CreateQuiz(ctx, tt.category, tt.count, tt.title)
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, tt.message, err.Error())
			assert.Zero(t, sampler.calls, "validation must precede the draw")
			assert.Zero(t, repo.createCalls)
		})
	}
}
