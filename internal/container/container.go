package container

import (
	"context"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quiz-lambda/internal/cache"
	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/question"
	"github.com/saulo-duarte/quiz-lambda/internal/quiz"
	"github.com/saulo-duarte/quiz-lambda/internal/router"
)

type Container struct {
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
	Router            http.Handler

	db    *gorm.DB
	redis *redis.Client
}

// Models lists every table the application owns, in migration order.
func Models() []interface{} {
	return []interface{}{&question.Question{}, &quiz.Quiz{}, &quiz.QuizQuestion{}}
}

// New initializes logging and storage from s and wires every feature.
func New(ctx context.Context, s *config.Settings) (*Container, error) {
	config.InitLogger(s.LogLevel, s.LogFormat)

	if err := config.Connect(ctx, s.DBDriver, s.DatabaseDSN); err != nil {
		return nil, err
	}
	if s.AutoMigrate {
		if err := config.Migrate(config.DB, Models()...); err != nil {
			if sqlDB, dbErr := config.DB.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, err
		}
	}

	var client *redis.Client
	if s.RedisAddr != "" {
		c, err := cache.NewClient(ctx, s.RedisAddr)
		if err != nil {
			config.WithContext(ctx).WithError(err).WithField("addr", s.RedisAddr).Warn("Redis unavailable, quiz cache disabled")
		} else {
			client = c
		}
	}

	return Build(config.DB, client, s), nil
}

// Build wires the features on top of an open database. client may be nil.
func Build(db *gorm.DB, client *redis.Client, s *config.Settings) *Container {
	questionContainer := question.NewQuestionContainer(db)

	quizRepo := quiz.NewRepository(db)
	if client != nil {
		quizRepo = cache.NewQuizRepository(quizRepo, client, s.RedisTTL)
	}
	quizContainer := quiz.NewQuizContainer(quizRepo, questionContainer.Service)

	return &Container{
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
		Router: router.New(router.RouterConfig{
			QuestionHandler: questionContainer.Handler,
			QuizHandler:     quizContainer.Handler,
			AllowedOrigins:  s.AllowedOrigins,
		}),
		db:    db,
		redis: client,
	}
}

func (c *Container) Close() error {
	if c.redis != nil {
		_ = c.redis.Close()
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
