package services

import (
	"context"
	"fmt"

	"yournews/logging"
	"yournews/models"
	"yournews/notifier"
	"yournews/repositories"
)

type NewsletterService interface {
	// CreateNewsletter publishes immediately and notifies subscribers of the
	// journalist and the publisher.
	CreateNewsletter(ctx context.Context, viewer models.Viewer, req models.ContentRequest) (*models.NewsletterResult, error)
	GetNewsletters(ctx context.Context, viewer models.Viewer, query models.ContentQuery) ([]models.Newsletter, int64, error)
	GetNewsletter(ctx context.Context, viewer models.Viewer, id uint) (*models.Newsletter, error)
	UpdateNewsletter(ctx context.Context, viewer models.Viewer, id uint, req models.ContentRequest) (*models.Newsletter, error)
	DeleteNewsletter(ctx context.Context, viewer models.Viewer, id uint) error
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
	subRepo        repositories.SubscriptionRepository
	visibility     VisibilityFilter
	dispatcher     Dispatcher
}

func NewNewsletterService(
	newsletterRepo repositories.NewsletterRepository,
	subRepo repositories.SubscriptionRepository,
	visibility VisibilityFilter,
	dispatcher Dispatcher,
) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		subRepo:        subRepo,
		visibility:     visibility,
		dispatcher:     dispatcher,
	}
}

func (s *newsletterService) CreateNewsletter(ctx context.Context, viewer models.Viewer, req models.ContentRequest) (*models.NewsletterResult, error) {
	if err := requireAuthor(viewer); err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Title:        req.Title,
		Content:      req.Content,
		JournalistID: viewer.UserID,
		PublisherID:  *viewer.PublisherID,
	}
	if err := s.newsletterRepo.Create(ctx, newsletter); err != nil {
		return nil, models.NewInternalError(err, "failed to create newsletter")
	}

	created, err := s.newsletterRepo.GetByID(ctx, newsletter.ID)
	if err != nil {
		return nil, storeError(err, "newsletter")
	}

	result := &models.NewsletterResult{Newsletter: created}
	job := notifier.Job{Name: fmt.Sprintf("newsletter %d", created.ID)}

	subscribers, err := s.subRepo.ListSubscribers(ctx, created.JournalistID, created.PublisherID)
	if err != nil {
		logging.FromContext(ctx).Error().Stack().
			Err(models.NewInternalError(err, "failed to list subscribers")).
			Uint("newsletter_id", created.ID).
			Msg("Could not list subscribers")
		result.Warnings = append(result.Warnings, "subscriber notifications could not be prepared")
	}
	for _, reader := range distinctReaders(subscribers) {
		job.Emails = append(job.Emails, notifier.NewNewsletterEmail(reader, *created))
	}
	job.Emails = append(job.Emails, notifier.NewsletterConfirmationEmail(created.Journalist, *created))

	result.Warnings = append(result.Warnings, dispatch(ctx, s.dispatcher, job)...)
	return result, nil
}

func (s *newsletterService) GetNewsletters(ctx context.Context, viewer models.Viewer, query models.ContentQuery) ([]models.Newsletter, int64, error) {
	scope, err := s.visibility.Scope(ctx, viewer, query)
	if err != nil {
		return nil, 0, err
	}

	newsletters, total, err := s.newsletterRepo.GetList(ctx, scope)
	if err != nil {
		return nil, 0, models.NewInternalError(err, "failed to list newsletters")
	}
	return newsletters, total, nil
}

func (s *newsletterService) GetNewsletter(ctx context.Context, viewer models.Viewer, id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "newsletter")
	}

	ok, err := s.visibility.CanSee(ctx, viewer, newsletter)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrorNotFound{Message: "newsletter not found"}
	}
	return newsletter, nil
}

func (s *newsletterService) UpdateNewsletter(ctx context.Context, viewer models.Viewer, id uint, req models.ContentRequest) (*models.Newsletter, error) {
	newsletter, err := s.editable(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if err := s.newsletterRepo.UpdateContent(ctx, newsletter.ID, req.Title, req.Content); err != nil {
		return nil, models.NewInternalError(err, "failed to update newsletter %d", id)
	}
	newsletter.Title = req.Title
	newsletter.Content = req.Content
	return newsletter, nil
}

func (s *newsletterService) DeleteNewsletter(ctx context.Context, viewer models.Viewer, id uint) error {
	newsletter, err := s.editable(ctx, viewer, id)
	if err != nil {
		return err
	}
	if err := s.newsletterRepo.Delete(ctx, newsletter.ID); err != nil {
		return models.NewInternalError(err, "failed to delete newsletter %d", id)
	}
	return nil
}

func (s *newsletterService) editable(ctx context.Context, viewer models.Viewer, id uint) (*models.Newsletter, error) {
	newsletter, err := s.GetNewsletter(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if !canEdit(viewer, newsletter) {
		return nil, models.ErrorForbidden{Message: "you cannot modify this newsletter"}
	}
	return newsletter, nil
}
