package quiz_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
)

// fakeSampler returns the first count questions of a category in insertion order.
type fakeSampler struct {
	byCategory map[string][]question.Question
	err        error
	calls      int
}

func (f *fakeSampler) RandomSample(_ context.Context, category string, count int) ([]question.Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	qs := f.byCategory[category]
	if len(qs) > count {
		qs = qs[:count]
	}
	return append([]question.Question(nil), qs...), nil
}

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*quiz.Quiz

	createErr   error
	getErr      error
	createCalls int
	getCalls    int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[uuid.UUID]*quiz.Quiz)}
}

func (f *fakeQuizRepo) Create(_ context.Context, q *quiz.Quiz) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	q.ID = uuid.New()
	for i := range q.Items {
		q.Items[i].QuizID = q.ID
	}
	f.quizzes[q.ID] = q
	return nil
}

func (f *fakeQuizRepo) GetByID(_ context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	q, ok := f.quizzes[id]
	if !ok {
		return nil, nil
	}
	return q, nil
}

func makeQuestions(category string, n int) []question.Question {
	out := make([]question.Question, n)
	for i := range out {
		out[i] = question.Question{
			ID:            uuid.New(),
			Category:      category,
			QuestionTitle: fmt.Sprintf("%s question %d", category, i),
			Option1:       fmt.Sprintf("opt-%d-1", i),
			Option2:       fmt.Sprintf("opt-%d-2", i),
			Option3:       fmt.Sprintf("opt-%d-3", i),
			Option4:       fmt.Sprintf("opt-%d-4", i),
			RightAnswer:   fmt.Sprintf("opt-%d-2", i),
		}
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
