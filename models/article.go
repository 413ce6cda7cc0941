package models

import (
	"time"
)

type ArticleStatus string

const (
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusRejected ArticleStatus = "rejected"
)

// articleTransitions lists every allowed status change. Approved and
// rejected are terminal.
var articleTransitions = map[ArticleStatus][]ArticleStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

func (s ArticleStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

func (s ArticleStatus) Terminal() bool {
	return len(articleTransitions[s]) == 0
}

func (s ArticleStatus) CanTransitionTo(to ArticleStatus) bool {
	for _, next := range articleTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Content is what the visibility filter needs to know about an article or a
// newsletter.
type Content interface {
	OwnerID() uint
	OwnerPublisherID() uint
	Published() bool
}

type Article struct {
	ID           uint          `json:"id" gorm:"primarykey"`
	Title        string        `json:"title" gorm:"not null"`
	Content      string        `json:"content" gorm:"type:text;not null"`
	JournalistID uint          `json:"journalist_id" gorm:"not null;index"`
	Journalist   User          `json:"journalist" gorm:"foreignKey:JournalistID"`
	PublisherID  uint          `json:"publisher_id" gorm:"not null;index"`
	Publisher    Publisher     `json:"publisher" gorm:"foreignKey:PublisherID"`
	Status       ArticleStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedByID *uint         `json:"reviewed_by_id"`
	ReviewedAt   *time.Time    `json:"reviewed_at"`
	CreatedAt    time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (a Article) OwnerID() uint          { return a.JournalistID }
func (a Article) OwnerPublisherID() uint { return a.PublisherID }
func (a Article) Published() bool        { return a.Status == StatusApproved }

// ArticleListItem is the lightweight listing shape.
type ArticleListItem struct {
	ID             uint          `json:"id"`
	Title          string        `json:"title"`
	JournalistName string        `json:"journalist_name"`
	PublisherName  string        `json:"publisher_name"`
	Status         ArticleStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (a Article) ListItem() ArticleListItem {
	return ArticleListItem{
		ID:             a.ID,
		Title:          a.Title,
		JournalistName: a.Journalist.DisplayName(),
		PublisherName:  a.Publisher.Name,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}
