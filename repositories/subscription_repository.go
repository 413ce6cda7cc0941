package repositories

import (
	"context"
	"time"

	"yournews/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Upsert creates the (reader, target) row or reactivates it in one
	// statement.
	Upsert(ctx context.Context, readerID uint, target models.Target) (*models.Subscription, error)
	// Deactivate reports whether an active row was switched off.
	Deactivate(ctx context.Context, readerID uint, target models.Target) (bool, error)
	ListActive(ctx context.Context, readerID uint) ([]models.Subscription, error)
	// ListSubscribers returns readers actively subscribed to the journalist
	// or to the publisher. A reader subscribed to both is returned twice.
	ListSubscribers(ctx context.Context, journalistID, publisherID uint) ([]models.User, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Upsert(ctx context.Context, readerID uint, target models.Target) (*models.Subscription, error) {
	sub := models.Subscription{
		ReaderID:   readerID,
		TargetType: target.Type,
		TargetID:   target.ID,
		Active:     true,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "reader_id"}, {Name: "target_type"}, {Name: "target_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"active":     true,
			"updated_at": time.Now(),
		}),
	}).Create(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Deactivate(ctx context.Context, readerID uint, target models.Target) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("reader_id = ? AND target_type = ? AND target_id = ? AND active = ?", readerID, target.Type, target.ID, true).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now()})
	return res.RowsAffected > 0, res.Error
}

func (r *subscriptionRepository) ListActive(ctx context.Context, readerID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.WithContext(ctx).
		Where("reader_id = ? AND active = ?", readerID, true).
		Order("subscribed_at desc").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, journalistID, publisherID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.reader_id = users.id").
		Where("subscriptions.active = ? AND users.role = ?", true, models.RoleReader).
		Where("((subscriptions.target_type = ? AND subscriptions.target_id = ?) OR (subscriptions.target_type = ? AND subscriptions.target_id = ?))",
			models.TargetJournalist, journalistID, models.TargetPublisher, publisherID).
		Order("users.id").
		Find(&users).Error
	return users, err
}
