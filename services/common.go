package services

import (
	"context"
	"errors"
	"fmt"

	"yournews/logging"
	"yournews/models"
	"yournews/notifier"

	"gorm.io/gorm"
)

// Dispatcher accepts notification jobs once the state change they announce is
// committed. *notifier.Notifier implements it.
type Dispatcher interface {
	Enqueue(ctx context.Context, job notifier.Job) error
}

// storeError turns a repository error into a typed error. what names the
// missing record ("article", "user", ...).
func storeError(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: what + " not found"}
	}
	return models.NewInternalError(err, "failed to load %s", what)
}

// dispatch hands the job over and reports what could not be accepted as a
// warning for the caller.
func dispatch(ctx context.Context, d Dispatcher, job notifier.Job) []string {
	if len(job.Emails) == 0 && job.SocialText == "" {
		return nil
	}
	if err := d.Enqueue(ctx, job); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("job", job.Name).Msg("Notification not delivered")
		return []string{fmt.Sprintf("notifications for %s were not delivered: %v", job.Name, err)}
	}
	return nil
}

// distinctReaders drops repeated users, keeping first occurrence order.
func distinctReaders(users []models.User) []models.User {
	seen := make(map[uint]struct{}, len(users))
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}

// canEdit allows the owning journalist, an editor of the same publisher and
// admins to change content.
func canEdit(viewer models.Viewer, content models.Content) bool {
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RoleJournalist:
		return content.OwnerID() == viewer.UserID
	case models.RoleEditor:
		return viewer.BelongsTo(content.OwnerPublisherID())
	}
	return false
}

func requireAuthor(viewer models.Viewer) error {
	if viewer.Role != models.RoleJournalist {
		return models.ErrorForbidden{Message: "only journalists can publish content"}
	}
	if viewer.PublisherID == nil {
		return models.ErrorForbidden{Message: "journalist is not affiliated with a publisher"}
	}
	return nil
}
