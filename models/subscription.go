package models

import "time"

type TargetType string

const (
	TargetJournalist TargetType = "journalist"
	TargetPublisher  TargetType = "publisher"
)

// Target is something a reader can subscribe to.
type Target struct {
	Type TargetType
	ID   uint
}

func JournalistTarget(id uint) Target { return Target{Type: TargetJournalist, ID: id} }
func PublisherTarget(id uint) Target  { return Target{Type: TargetPublisher, ID: id} }

// Subscription rows are unique per (reader, target) and are deactivated
// instead of deleted.
type Subscription struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	ReaderID     uint       `json:"reader_id" gorm:"not null;uniqueIndex:idx_subscription_pair,priority:1"`
	TargetType   TargetType `json:"target_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_subscription_pair,priority:2"`
	TargetID     uint       `json:"target_id" gorm:"not null;uniqueIndex:idx_subscription_pair,priority:3"`
	Active       bool       `json:"active" gorm:"not null;default:true"`
	SubscribedAt time.Time  `json:"subscribed_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SubscriptionSet holds the active targets of one reader.
type SubscriptionSet struct {
	Journalists map[uint]struct{}
	Publishers  map[uint]struct{}
}

func NewSubscriptionSet(subs []Subscription) SubscriptionSet {
	set := SubscriptionSet{
		Journalists: make(map[uint]struct{}),
		Publishers:  make(map[uint]struct{}),
	}
	for _, s := range subs {
		if !s.Active {
			continue
		}
		switch s.TargetType {
		case TargetJournalist:
			set.Journalists[s.TargetID] = struct{}{}
		case TargetPublisher:
			set.Publishers[s.TargetID] = struct{}{}
		}
	}
	return set
}

// Has reports an exact match on the target.
func (s SubscriptionSet) Has(t Target) bool {
	var ok bool
	switch t.Type {
	case TargetJournalist:
		_, ok = s.Journalists[t.ID]
	case TargetPublisher:
		_, ok = s.Publishers[t.ID]
	}
	return ok
}

func (s SubscriptionSet) JournalistIDs() []uint { return keys(s.Journalists) }
func (s SubscriptionSet) PublisherIDs() []uint  { return keys(s.Publishers) }

func (s SubscriptionSet) Empty() bool {
	return len(s.Journalists) == 0 && len(s.Publishers) == 0
}

func keys(m map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
