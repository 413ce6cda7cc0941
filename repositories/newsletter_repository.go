package repositories

import (
	"context"

	"yournews/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *models.Newsletter) error
	GetByID(ctx context.Context, id uint) (*models.Newsletter, error)
	GetList(ctx context.Context, scope models.ContentScope) ([]models.Newsletter, int64, error)
	UpdateContent(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, newsletter *models.Newsletter) error {
	return r.db.WithContext(ctx).Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.WithContext(ctx).
		Preload("Journalist").
		Preload("Publisher").
		First(&newsletter, id).Error
	if err != nil {
		return nil, err
	}
	return &newsletter, nil
}

func (r *newsletterRepository) GetList(ctx context.Context, scope models.ContentScope) ([]models.Newsletter, int64, error) {
	var newsletters []models.Newsletter
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Newsletter{})
	query = applyContentScope(query, "newsletters", scope, false)

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query.Session(&gorm.Session{}), "newsletters", scope.Query).
		Preload("Journalist").
		Preload("Publisher").
		Find(&newsletters).Error
	if err != nil {
		return nil, 0, err
	}
	return newsletters, total, nil
}

func (r *newsletterRepository) UpdateContent(ctx context.Context, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&models.Newsletter{ID: id}).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (r *newsletterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Newsletter{}, id).Error
}
