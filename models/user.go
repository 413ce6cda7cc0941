package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleReader     UserRole = "reader"
	RoleJournalist UserRole = "journalist"
	RoleEditor     UserRole = "editor"
	RolePublisher  UserRole = "publisher"
	RoleAdmin      UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor, RolePublisher, RoleAdmin:
		return true
	}
	return false
}

// RequiresPublisher reports whether users with this role must be affiliated
// with a publisher.
func (r UserRole) RequiresPublisher() bool {
	return r == RoleJournalist || r == RoleEditor
}

// Staff roles see content regardless of subscriptions and status.
func (r UserRole) Staff() bool {
	return r == RoleJournalist || r == RoleEditor || r == RolePublisher || r == RoleAdmin
}

type User struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Role        UserRole       `json:"role" gorm:"default:'reader';index"`
	PublisherID *uint          `json:"publisher_id"`
	Publisher   *Publisher     `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// DisplayName is the full name when one is set, the username otherwise.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// Viewer returns the identity used for authorization decisions.
func (u User) Viewer() Viewer {
	return Viewer{UserID: u.ID, Role: u.Role, PublisherID: u.PublisherID}
}

// Viewer is the caller of a request as resolved by the auth middleware.
type Viewer struct {
	UserID      uint
	Role        UserRole
	PublisherID *uint
}

// BelongsTo reports whether the viewer is affiliated with the given publisher.
func (v Viewer) BelongsTo(publisherID uint) bool {
	return v.PublisherID != nil && *v.PublisherID == publisherID
}
