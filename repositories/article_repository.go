package repositories

import (
	"context"
	"time"

	"yournews/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetList(ctx context.Context, scope models.ContentScope) ([]models.Article, int64, error)
	UpdateContent(ctx context.Context, id uint, title, content string) error
	Delete(ctx context.Context, id uint) error
	// CompareAndSetStatus moves the article from one status to another only if
	// it is still in the first. It reports whether the row changed.
	CompareAndSetStatus(ctx context.Context, id uint, from, to models.ArticleStatus, reviewerID uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).
		Preload("Journalist").
		Preload("Publisher").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, scope models.ContentScope) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Article{})
	query = applyContentScope(query, "articles", scope, true)

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query.Session(&gorm.Session{}), "articles", scope.Query).
		Preload("Journalist").
		Preload("Publisher").
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) UpdateContent(ctx context.Context, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&models.Article{ID: id}).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

func (r *articleRepository) CompareAndSetStatus(ctx context.Context, id uint, from, to models.ArticleStatus, reviewerID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":         to,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
