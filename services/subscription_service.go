package services

import (
	"context"
	"errors"

	"yournews/logging"
	"yournews/models"
	"yournews/repositories"

	"gorm.io/gorm"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, viewer models.Viewer, target models.Target) error
	// Unsubscribe is a no-op when there is no active subscription.
	Unsubscribe(ctx context.Context, viewer models.Viewer, target models.Target) error
	ListSubscriptions(ctx context.Context, viewer models.Viewer) (*models.SubscriptionsResponse, error)
}

type subscriptionService struct {
	subRepo       repositories.SubscriptionRepository
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	publisherRepo repositories.PublisherRepository,
) SubscriptionService {
	return &subscriptionService{
		subRepo:       subRepo,
		userRepo:      userRepo,
		publisherRepo: publisherRepo,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, viewer models.Viewer, target models.Target) error {
	if err := requireReader(viewer); err != nil {
		return err
	}
	if err := s.targetExists(ctx, target); err != nil {
		return err
	}
	if _, err := s.subRepo.Upsert(ctx, viewer.UserID, target); err != nil {
		return models.NewInternalError(err, "failed to subscribe to %s %d", target.Type, target.ID)
	}
	logging.FromContext(ctx).Debug().
		Uint("reader_id", viewer.UserID).
		Str("target_type", string(target.Type)).
		Uint("target_id", target.ID).
		Msg("Subscribed")
	return nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, viewer models.Viewer, target models.Target) error {
	if err := requireReader(viewer); err != nil {
		return err
	}
	if _, err := s.subRepo.Deactivate(ctx, viewer.UserID, target); err != nil {
		return models.NewInternalError(err, "failed to unsubscribe from %s %d", target.Type, target.ID)
	}
	return nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, viewer models.Viewer) (*models.SubscriptionsResponse, error) {
	if err := requireReader(viewer); err != nil {
		return nil, err
	}

	subs, err := s.subRepo.ListActive(ctx, viewer.UserID)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to load subscriptions")
	}

	resp := &models.SubscriptionsResponse{
		Journalists: []models.Journalist{},
		Publishers:  []models.Publisher{},
	}
	for _, sub := range subs {
		switch sub.TargetType {
		case models.TargetJournalist:
			user, err := s.userRepo.GetJournalist(ctx, sub.TargetID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// no longer a journalist
				continue
			} else if err != nil {
				return nil, models.NewInternalError(err, "failed to load journalist %d", sub.TargetID)
			}
			resp.Journalists = append(resp.Journalists, models.NewJournalist(*user))
		case models.TargetPublisher:
			publisher, err := s.publisherRepo.GetByID(ctx, sub.TargetID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			} else if err != nil {
				return nil, models.NewInternalError(err, "failed to load publisher %d", sub.TargetID)
			}
			resp.Publishers = append(resp.Publishers, *publisher)
		}
	}
	return resp, nil
}

func (s *subscriptionService) targetExists(ctx context.Context, target models.Target) error {
	var err error
	switch target.Type {
	case models.TargetJournalist:
		_, err = s.userRepo.GetJournalist(ctx, target.ID)
	case models.TargetPublisher:
		_, err = s.publisherRepo.GetByID(ctx, target.ID)
	default:
		return models.ErrorValidation{Message: "unknown subscription target"}
	}
	if err != nil {
		return storeError(err, string(target.Type))
	}
	return nil
}

func requireReader(viewer models.Viewer) error {
	if viewer.Role != models.RoleReader {
		return models.ErrorForbidden{Message: "only readers can manage subscriptions"}
	}
	return nil
}
