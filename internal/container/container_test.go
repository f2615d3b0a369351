package container_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/container"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/testutil"
)

func testSettings() *config.Settings {
	return &config.Settings{
		AllowedOrigins: []string{"*"},
		RedisTTL:       time.Minute,
	}
}

func send(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func seedBank(t *testing.T, h http.Handler) map[string]string {
	t.Helper()

	answers := map[string]string{}
	for i := 1; i <= 3; i++ {
		dto := question.CreateQuestionDTO{
			Category:      "Java",
			QuestionTitle: fmt.Sprintf("Question %d", i),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			RightAnswer:   "b",
		}
		rec := send(t, h, http.MethodPost, "/api/v1/question/add", dto)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created question.Question
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		answers[created.ID.String()] = created.RightAnswer
	}
	return answers
}

func createQuiz(t *testing.T, h http.Handler, numQ string) quiz.CreateQuizResponse {
	t.Helper()

	v := url.Values{}
	v.Set("category", "Java")
	v.Set("numQ", numQ)
	v.Set("title", "Java Basics")
	rec := send(t, h, http.MethodPost, "/api/v1/quiz/create?"+v.Encode(), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp quiz.CreateQuizResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func playQuiz(t *testing.T, h http.Handler, id string, answers map[string]string) {
	t.Helper()

	rec := send(t, h, http.MethodGet, "/api/v1/quiz/get/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 3)
	for _, item := range raw {
		assert.NotContains(t, item, "right_answer")
		assert.NotContains(t, item, "category")
	}

	var views []question.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))

	wrong := "a"
	responses := []quiz.Response{
		{ID: views[0].ID.String(), Response: strPtr(answers[views[0].ID.String()])},
		{ID: views[1].ID.String(), Response: &wrong},
		{ID: views[2].ID.String(), Response: strPtr(answers[views[2].ID.String()])},
	}
	rec = send(t, h, http.MethodPost, "/api/v1/quiz/submit/"+id, responses)
	require.Equal(t, http.StatusOK, rec.Code)

	var score int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, 2, score)
}

func strPtr(s string) *string {
	return &s
}

func TestRouterEndToEnd(t *testing.T) {
	db := testutil.NewDB(t, container.Models()...)
	c := container.Build(db, nil, testSettings())
	h := c.Router

	answers := seedBank(t, h)

	rec := send(t, h, http.MethodGet, "/api/v1/question/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []question.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	rec = send(t, h, http.MethodGet, "/api/v1/question/category/Python", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	created := createQuiz(t, h, "3")
	assert.Equal(t, "Quiz created successfully", created.Message)
	playQuiz(t, h, created.ID.String(), answers)

	t.Run("NotEnoughQuestions", func(t *testing.T) {
		v := url.Values{"category": {"Java"}, "numQ": {"4"}, "title": {"Too long"}}
		rec := send(t, h, http.MethodPost, "/api/v1/quiz/create?"+v.Encode(), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		rec := send(t, h, http.MethodGet, "/api/v1/quiz/get/00000000-0000-0000-0000-000000000001", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MalformedQuizID", func(t *testing.T) {
		rec := send(t, h, http.MethodGet, "/api/v1/quiz/get/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouterHealthz(t *testing.T) {
	db := testutil.NewDB(t, container.Models()...)
	h := container.Build(db, nil, testSettings()).Router

	rec := send(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouterWithQuizCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	db := testutil.NewDB(t, container.Models()...)
	h := container.Build(db, client, testSettings()).Router

	answers := seedBank(t, h)
	created := createQuiz(t, h, "3")

	assert.True(t, mr.Exists("quiz:"+created.ID.String()))
	playQuiz(t, h, created.ID.String(), answers)
}

func TestNewClosesDatabaseWhenMigrationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.db")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s := testSettings()
	s.DBDriver = config.DriverSQLite
	s.DatabaseDSN = "file:" + path + "?mode=ro"
	s.AutoMigrate = true
	s.LogLevel = logrus.ErrorLevel
	s.LogFormat = "text"

	c, err := container.New(context.Background(), s)
	require.Error(t, err)
	assert.Nil(t, c)

	sqlDB, err := config.DB.DB()
	require.NoError(t, err)
	assert.Error(t, sqlDB.Ping())
}
