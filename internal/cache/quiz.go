// Package cache provides a Redis read-through cache for quizzes. Quizzes are
// never modified after creation, so entries only expire by TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
)

const quizKeyPrefix = "quiz:"

type cachedQuiz struct {
	ID        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	CreatedAt time.Time           `json:"created_at"`
	Questions []question.Question `json:"questions"`
}

type QuizRepository struct {
	next   quiz.QuizRepository
	client *redis.Client
	ttl    time.Duration
}

func NewQuizRepository(next quiz.QuizRepository, client *redis.Client, ttl time.Duration) *QuizRepository {
	return &QuizRepository{next: next, client: client, ttl: ttl}
}

func (r *QuizRepository) Create(ctx context.Context, q *quiz.Quiz) error {
	if err := r.next.Create(ctx, q); err != nil {
		return err
	}
	r.store(ctx, q)
	return nil
}

// GetByID serves from Redis when possible. Cache faults fall through to the
// underlying repository and are only logged.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*quiz.Quiz, error) {
	log := config.WithContext(ctx).WithField("quiz_id", id)

	raw, err := r.client.Get(ctx, quizKey(id)).Bytes()
	switch {
	case err == nil:
		var cached cachedQuiz
		if err := json.Unmarshal(raw, &cached); err == nil {
			log.Debug("Quiz cache hit")
			return cached.toQuiz(), nil
		}
		log.WithError(err).Warn("Discarding undecodable quiz cache entry")
	case errors.Is(err, redis.Nil):
		log.Debug("Quiz cache miss")
	default:
		log.WithError(err).Warn("Quiz cache unavailable")
	}

	q, err := r.next.GetByID(ctx, id)
	if err != nil || q == nil {
		return q, err
	}
	r.store(ctx, q)
	return q, nil
}

func (r *QuizRepository) store(ctx context.Context, q *quiz.Quiz) {
	raw, err := json.Marshal(cachedQuiz{
		ID:        q.ID,
		Title:     q.Title,
		CreatedAt: q.CreatedAt,
		Questions: q.Questions(),
	})
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to encode quiz for cache")
		return
	}
	if err := r.client.Set(ctx, quizKey(q.ID), raw, r.ttl).Err(); err != nil {
		config.WithContext(ctx).WithError(err).WithField("quiz_id", q.ID).Warn("Failed to cache quiz")
	}
}

func (c cachedQuiz) toQuiz() *quiz.Quiz {
	q := quiz.NewQuiz(c.Title, c.Questions)
	q.ID = c.ID
	q.CreatedAt = c.CreatedAt
	for i := range q.Items {
		q.Items[i].QuizID = c.ID
	}
	return q
}

func quizKey(id uuid.UUID) string {
	return quizKeyPrefix + id.String()
}

// NewClient connects to Redis at addr and verifies the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
