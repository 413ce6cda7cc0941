package repositories

import (
	"context"
	"time"

	"yournews/models"

	"gorm.io/gorm"
)

type RoleApplicationRepository interface {
	Create(ctx context.Context, app *models.RoleApplication) error
	GetByID(ctx context.Context, id uint) (*models.RoleApplication, error)
	GetList(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error)
	HasPending(ctx context.Context, userID uint) (bool, error)
	// Approve applies the role change and closes the application in one
	// transaction. It reports false if the application was no longer pending.
	Approve(ctx context.Context, appID uint, change models.RoleChange) (*models.User, bool, error)
	Reject(ctx context.Context, appID uint) (bool, error)
}

type roleApplicationRepository struct {
	db *gorm.DB
}

func NewRoleApplicationRepository(db *gorm.DB) RoleApplicationRepository {
	return &roleApplicationRepository{db: db}
}

func (r *roleApplicationRepository) Create(ctx context.Context, app *models.RoleApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *roleApplicationRepository) GetByID(ctx context.Context, id uint) (*models.RoleApplication, error) {
	var app models.RoleApplication
	if err := r.db.WithContext(ctx).Preload("User").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *roleApplicationRepository) GetList(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error) {
	var apps []models.RoleApplication
	query := r.db.WithContext(ctx).Preload("User")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("submitted_at ASC").Order("id ASC").Find(&apps).Error
	return apps, err
}

func (r *roleApplicationRepository) HasPending(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RoleApplication{}).
		Where("user_id = ? AND status = ?", userID, models.ApplicationPending).
		Count(&count).Error
	return count > 0, err
}

func (r *roleApplicationRepository) Approve(ctx context.Context, appID uint, change models.RoleChange) (*models.User, bool, error) {
	var user *models.User
	closed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := closeApplication(tx, appID, models.ApplicationApproved)
		if err != nil || !ok {
			return err
		}
		user, err = applyRoleChange(tx, change)
		if err != nil {
			return err
		}
		closed = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return user, closed, nil
}

func (r *roleApplicationRepository) Reject(ctx context.Context, appID uint) (bool, error) {
	return closeApplication(r.db.WithContext(ctx), appID, models.ApplicationRejected)
}

func closeApplication(tx *gorm.DB, appID uint, status models.ApplicationStatus) (bool, error) {
	res := tx.Model(&models.RoleApplication{}).
		Where("id = ? AND status = ?", appID, models.ApplicationPending).
		Updates(map[string]interface{}{"status": status, "decided_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
