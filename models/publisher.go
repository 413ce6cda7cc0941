package models

import "time"

type Publisher struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Journalist is the directory view of a journalist account.
type Journalist struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	PublisherID   uint   `json:"publisher_id"`
	PublisherName string `json:"publisher_name"`
}

// NewJournalist builds the directory view from a user preloaded with its
// publisher.
func NewJournalist(u User) Journalist {
	j := Journalist{ID: u.ID, Name: u.DisplayName(), Username: u.Username}
	if u.PublisherID != nil {
		j.PublisherID = *u.PublisherID
	}
	if u.Publisher != nil {
		j.PublisherName = u.Publisher.Name
	}
	return j
}
