package repositories

import (
	"context"

	"yournews/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(ctx context.Context, publisher *models.Publisher) error
	GetByID(ctx context.Context, id uint) (*models.Publisher, error)
	GetAll(ctx context.Context) ([]models.Publisher, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(ctx context.Context, publisher *models.Publisher) error {
	return r.db.WithContext(ctx).Create(publisher).Error
}

func (r *publisherRepository) GetByID(ctx context.Context, id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	if err := r.db.WithContext(ctx).First(&publisher, id).Error; err != nil {
		return nil, err
	}
	return &publisher, nil
}

func (r *publisherRepository) GetAll(ctx context.Context) ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.WithContext(ctx).Order("name").Find(&publishers).Error
	return publishers, err
}
