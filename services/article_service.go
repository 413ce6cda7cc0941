package services

import (
	"context"
	"fmt"

	"yournews/logging"
	"yournews/metrics"
	"yournews/models"
	"yournews/notifier"
	"yournews/repositories"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, viewer models.Viewer, req models.ContentRequest) (*models.Article, error)
	GetArticles(ctx context.Context, viewer models.Viewer, query models.ContentQuery) ([]models.Article, int64, error)
	GetArticle(ctx context.Context, viewer models.Viewer, id uint) (*models.Article, error)
	UpdateArticle(ctx context.Context, viewer models.Viewer, id uint, req models.ContentRequest) (*models.Article, error)
	DeleteArticle(ctx context.Context, viewer models.Viewer, id uint) error
	// ReviewArticle approves or rejects a pending article and schedules the
	// notifications for the decision.
	ReviewArticle(ctx context.Context, viewer models.Viewer, id uint, decision models.ArticleStatus) (*models.ReviewResult, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	subRepo     repositories.SubscriptionRepository
	visibility  VisibilityFilter
	dispatcher  Dispatcher
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	subRepo repositories.SubscriptionRepository,
	visibility VisibilityFilter,
	dispatcher Dispatcher,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		subRepo:     subRepo,
		visibility:  visibility,
		dispatcher:  dispatcher,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, viewer models.Viewer, req models.ContentRequest) (*models.Article, error) {
	if err := requireAuthor(viewer); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:        req.Title,
		Content:      req.Content,
		JournalistID: viewer.UserID,
		PublisherID:  *viewer.PublisherID,
		Status:       models.StatusPending,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, models.NewInternalError(err, "failed to create article")
	}

	created, err := s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return nil, storeError(err, "article")
	}
	return created, nil
}

func (s *articleService) GetArticles(ctx context.Context, viewer models.Viewer, query models.ContentQuery) ([]models.Article, int64, error) {
	if query.Status != "" && !query.Status.Valid() {
		return nil, 0, models.ErrorValidation{Message: fmt.Sprintf("unknown status %q", query.Status)}
	}

	scope, err := s.visibility.Scope(ctx, viewer, query)
	if err != nil {
		return nil, 0, err
	}

	articles, total, err := s.articleRepo.GetList(ctx, scope)
	if err != nil {
		return nil, 0, models.NewInternalError(err, "failed to list articles")
	}
	return articles, total, nil
}

// GetArticle hides content the viewer may not see behind a not found error.
func (s *articleService) GetArticle(ctx context.Context, viewer models.Viewer, id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "article")
	}

	ok, err := s.visibility.CanSee(ctx, viewer, article)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, viewer models.Viewer, id uint, req models.ContentRequest) (*models.Article, error) {
	article, err := s.editable(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.UpdateContent(ctx, article.ID, req.Title, req.Content); err != nil {
		return nil, models.NewInternalError(err, "failed to update article %d", id)
	}
	article.Title = req.Title
	article.Content = req.Content
	return article, nil
}

func (s *articleService) DeleteArticle(ctx context.Context, viewer models.Viewer, id uint) error {
	article, err := s.editable(ctx, viewer, id)
	if err != nil {
		return err
	}
	if err := s.articleRepo.Delete(ctx, article.ID); err != nil {
		return models.NewInternalError(err, "failed to delete article %d", id)
	}
	return nil
}

func (s *articleService) editable(ctx context.Context, viewer models.Viewer, id uint) (*models.Article, error) {
	article, err := s.GetArticle(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if !canEdit(viewer, article) {
		return nil, models.ErrorForbidden{Message: "you cannot modify this article"}
	}
	return article, nil
}

func (s *articleService) ReviewArticle(ctx context.Context, viewer models.Viewer, id uint, decision models.ArticleStatus) (*models.ReviewResult, error) {
	label := reviewLabel(decision)
	if label == "" {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("invalid review decision %q", decision)}
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "article")
	}

	if !canReview(viewer, article) {
		metrics.RecordReview(label, metrics.ResultDenied)
		return nil, models.ErrorForbidden{Message: "only an editor of the article's publisher can review it"}
	}
	if !article.Status.CanTransitionTo(decision) {
		metrics.RecordReview(label, metrics.ResultConflict)
		return nil, models.ErrorConflict{Message: fmt.Sprintf("article is already %s", article.Status)}
	}

	changed, err := s.articleRepo.CompareAndSetStatus(ctx, article.ID, article.Status, decision, viewer.UserID)
	if err != nil {
		metrics.RecordReview(label, metrics.ResultFailure)
		return nil, models.NewInternalError(err, "failed to %s article %d", label, id)
	}
	if !changed {
		metrics.RecordReview(label, metrics.ResultConflict)
		return nil, models.ErrorConflict{Message: "article was reviewed by someone else"}
	}
	metrics.RecordReview(label, metrics.ResultSuccess)

	article.Status = decision
	reviewer := viewer.UserID
	article.ReviewedByID = &reviewer

	logging.FromContext(ctx).Info().
		Uint("article_id", article.ID).
		Uint("reviewer_id", reviewer).
		Str("status", string(decision)).
		Msg("Article reviewed")

	result := &models.ReviewResult{Article: article}
	job, err := s.reviewJob(ctx, *article)
	if err != nil {
		// the decision is committed, subscribers just miss the mail
		logging.FromContext(ctx).Error().Stack().Err(err).Uint("article_id", article.ID).Msg("Could not list subscribers")
		result.Warnings = append(result.Warnings, "subscriber notifications could not be prepared")
	}
	result.Warnings = append(result.Warnings, dispatch(ctx, s.dispatcher, job)...)
	return result, nil
}

// reviewJob emails every distinct subscriber, then the journalist, then posts
// to social media. A rejection only reaches the journalist.
// The journalist is notified even when the subscriber lookup fails.
func (s *articleService) reviewJob(ctx context.Context, article models.Article) (job notifier.Job, err error) {
	job = notifier.Job{Name: fmt.Sprintf("article %d %s", article.ID, article.Status)}

	if article.Status == models.StatusApproved {
		subscribers, lookupErr := s.subRepo.ListSubscribers(ctx, article.JournalistID, article.PublisherID)
		if lookupErr != nil {
			err = models.NewInternalError(lookupErr, "failed to list subscribers of article %d", article.ID)
		}
		for _, reader := range distinctReaders(subscribers) {
			job.Emails = append(job.Emails, notifier.NewArticleEmail(reader, article))
		}
	}

	job.Emails = append(job.Emails, notifier.ArticleStatusEmail(article.Journalist, article))

	if article.Status == models.StatusApproved {
		job.SocialText = notifier.ArticleSocialText(article)
	}
	return job, err
}

func canReview(viewer models.Viewer, article *models.Article) bool {
	switch viewer.Role {
	case models.RoleAdmin:
		return true
	case models.RoleEditor:
		return viewer.BelongsTo(article.PublisherID)
	}
	return false
}

func reviewLabel(decision models.ArticleStatus) string {
	switch decision {
	case models.StatusApproved:
		return "approve"
	case models.StatusRejected:
		return "reject"
	}
	return ""
}
