package services

import (
	"context"

	"yournews/models"
	"yournews/repositories"
)

// DirectoryService lists the publishers and journalists readers can follow.
type DirectoryService interface {
	GetPublishers(ctx context.Context) ([]models.Publisher, error)
	GetPublisher(ctx context.Context, id uint) (*models.Publisher, error)
	GetJournalists(ctx context.Context) ([]models.Journalist, error)
	GetJournalist(ctx context.Context, id uint) (*models.Journalist, error)
}

type directoryService struct {
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
}

func NewDirectoryService(userRepo repositories.UserRepository, publisherRepo repositories.PublisherRepository) DirectoryService {
	return &directoryService{userRepo: userRepo, publisherRepo: publisherRepo}
}

func (s *directoryService) GetPublishers(ctx context.Context) ([]models.Publisher, error) {
	publishers, err := s.publisherRepo.GetAll(ctx)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to list publishers")
	}
	return publishers, nil
}

func (s *directoryService) GetPublisher(ctx context.Context, id uint) (*models.Publisher, error) {
	publisher, err := s.publisherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "publisher")
	}
	return publisher, nil
}

func (s *directoryService) GetJournalists(ctx context.Context) ([]models.Journalist, error) {
	users, err := s.userRepo.ListJournalists(ctx)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to list journalists")
	}
	journalists := make([]models.Journalist, 0, len(users))
	for _, u := range users {
		journalists = append(journalists, models.NewJournalist(u))
	}
	return journalists, nil
}

func (s *directoryService) GetJournalist(ctx context.Context, id uint) (*models.Journalist, error) {
	user, err := s.userRepo.GetJournalist(ctx, id)
	if err != nil {
		return nil, storeError(err, "journalist")
	}
	j := models.NewJournalist(*user)
	return &j, nil
}
