package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
	// GetByID returns nil, nil when no quiz has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Create writes the quiz row and its ordered question links in one transaction.
func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(q).Error; err != nil {
			return err
		}

		if len(q.Items) == 0 {
			return nil
		}
		for i := range q.Items {
			q.Items[i].QuizID = q.ID
		}
		return tx.Omit(clause.Associations).Create(&q.Items).Error
	})
}

func (r *quizRepository) GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	var quiz Quiz
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Items.Question").
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}
