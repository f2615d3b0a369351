package question

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Question, error)
	FindByCategory(ctx context.Context, category string) ([]Question, error)
	FindRandomByCategory(ctx context.Context, category string, count int) ([]Question, error)
	Save(ctx context.Context, q *Question) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) FindByCategory(ctx context.Context, category string) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindRandomByCategory returns at most count questions of category in random order.
func (r *repository) FindRandomByCategory(ctx context.Context, category string, count int) ([]Question, error) {
	var questions []Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("RANDOM()").
		Limit(count).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Save(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}
