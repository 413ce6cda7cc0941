package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type RoleApplication struct {
	ID          uint              `json:"id" gorm:"primarykey"`
	UserID      uint              `json:"user_id" gorm:"not null;index"`
	User        User              `json:"user" gorm:"foreignKey:UserID"`
	AppliedRole UserRole          `json:"applied_role" gorm:"type:varchar(20);not null"`
	Motivation  string            `json:"motivation" gorm:"type:text"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedAt time.Time         `json:"submitted_at" gorm:"autoCreateTime"`
	DecidedAt   *time.Time        `json:"decided_at"`
}

// RoleChange describes an admin-driven role update. For a publisher role
// without PublisherID a new publisher named PublisherName is created.
type RoleChange struct {
	UserID        uint
	NewRole       UserRole
	PublisherID   *uint
	PublisherName string
}
