package models

import "time"

// Newsletter has no review step and is visible as soon as it is created.
type Newsletter struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"not null"`
	Content      string    `json:"content" gorm:"type:text;not null"`
	JournalistID uint      `json:"journalist_id" gorm:"not null;index"`
	Journalist   User      `json:"journalist" gorm:"foreignKey:JournalistID"`
	PublisherID  uint      `json:"publisher_id" gorm:"not null;index"`
	Publisher    Publisher `json:"publisher" gorm:"foreignKey:PublisherID"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (n Newsletter) OwnerID() uint          { return n.JournalistID }
func (n Newsletter) OwnerPublisherID() uint { return n.PublisherID }
func (n Newsletter) Published() bool        { return true }

type NewsletterListItem struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	JournalistName string    `json:"journalist_name"`
	PublisherName  string    `json:"publisher_name"`
	CreatedAt      time.Time `json:"created_at"`
}

func (n Newsletter) ListItem() NewsletterListItem {
	return NewsletterListItem{
		ID:             n.ID,
		Title:          n.Title,
		JournalistName: n.Journalist.DisplayName(),
		PublisherName:  n.Publisher.Name,
		CreatedAt:      n.CreatedAt,
	}
}
