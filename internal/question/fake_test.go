package question_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
)

type fakeRepo struct {
	questions []question.Question
	err       error

	saveCalls   int
	sampleCalls int
	lastCount   int
}

func (f *fakeRepo) FindAll(_ context.Context) ([]question.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func (f *fakeRepo) FindByCategory(_ context.Context, category string) ([]question.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []question.Question
	for _, q := range f.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindRandomByCategory(ctx context.Context, category string, count int) ([]question.Question, error) {
	f.sampleCalls++
	f.lastCount = count
	out, err := f.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

func (f *fakeRepo) Save(_ context.Context, q *question.Question) error {
	f.saveCalls++
	if f.err != nil {
		return f.err
	}
	q.ID = uuid.New()
	f.questions = append(f.questions, *q)
	return nil
}

func newQuestion(category, title, answer string) question.Question {
	return question.Question{
		ID:            uuid.New(),
		Category:      category,
		QuestionTitle: title,
		Option1:       "a",
		Option2:       "b",
		Option3:       "c",
		Option4:       "d",
		RightAnswer:   answer,
	}
}
