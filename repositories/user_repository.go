package repositories

import (
	"context"
	"time"

	"yournews/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListJournalists(ctx context.Context) ([]models.User, error)
	GetJournalist(ctx context.Context, id uint) (*models.User, error)
	ChangeRole(ctx context.Context, change models.RoleChange) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Publisher").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListJournalists(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Where("role = ?", models.RoleJournalist).
		Order("username").
		Find(&users).Error
	return users, err
}

func (r *userRepository) GetJournalist(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Publisher").
		Where("role = ?", models.RoleJournalist).
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ChangeRole(ctx context.Context, change models.RoleChange) (*models.User, error) {
	var user *models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = applyRoleChange(tx, change)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// applyRoleChange runs inside a transaction. A reader leaving the reader role
// loses every subscription before the new role is written.
func applyRoleChange(tx *gorm.DB, change models.RoleChange) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, change.UserID).Error; err != nil {
		return nil, err
	}

	if user.Role == models.RoleReader && change.NewRole != models.RoleReader {
		err := tx.Model(&models.Subscription{}).
			Where("reader_id = ? AND active = ?", user.ID, true).
			Updates(map[string]interface{}{"active": false, "updated_at": time.Now()}).Error
		if err != nil {
			return nil, err
		}
	}

	publisherID := change.PublisherID
	if change.NewRole == models.RolePublisher && publisherID == nil && change.PublisherName != "" {
		publisher := models.Publisher{Name: change.PublisherName}
		if err := tx.Create(&publisher).Error; err != nil {
			return nil, err
		}
		publisherID = &publisher.ID
	}
	if change.NewRole == models.RoleReader || change.NewRole == models.RoleAdmin {
		publisherID = nil
	}

	err := tx.Model(&user).Updates(map[string]interface{}{
		"role":         change.NewRole,
		"publisher_id": publisherID,
	}).Error
	if err != nil {
		return nil, err
	}

	user.Role = change.NewRole
	user.PublisherID = publisherID
	return &user, nil
}
