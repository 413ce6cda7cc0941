package services

import (
	"context"

	"yournews/models"
	"yournews/repositories"
)

// VisibilityFilter decides what content a viewer may read.
type VisibilityFilter interface {
	// Scope turns a list query into what the viewer is allowed to list. A
	// reader filtering by a journalist or publisher must be subscribed to that
	// exact target.
	Scope(ctx context.Context, viewer models.Viewer, query models.ContentQuery) (models.ContentScope, error)
	CanSee(ctx context.Context, viewer models.Viewer, content models.Content) (bool, error)
}

type visibilityFilter struct {
	subRepo repositories.SubscriptionRepository
}

func NewVisibilityFilter(subRepo repositories.SubscriptionRepository) VisibilityFilter {
	return &visibilityFilter{subRepo: subRepo}
}

func (f *visibilityFilter) Scope(ctx context.Context, viewer models.Viewer, query models.ContentQuery) (models.ContentScope, error) {
	if viewer.Role.Staff() {
		return models.ContentScope{Unrestricted: true, Query: query}, nil
	}

	set, err := f.subscriptions(ctx, viewer)
	if err != nil {
		return models.ContentScope{}, err
	}
	if query.JournalistID != nil && !set.Has(models.JournalistTarget(*query.JournalistID)) {
		return models.ContentScope{}, models.ErrorForbidden{Message: "you are not subscribed to this journalist"}
	}
	if query.PublisherID != nil && !set.Has(models.PublisherTarget(*query.PublisherID)) {
		return models.ContentScope{}, models.ErrorForbidden{Message: "you are not subscribed to this publisher"}
	}

	query.Status = ""
	return models.ContentScope{
		JournalistIDs: set.JournalistIDs(),
		PublisherIDs:  set.PublisherIDs(),
		ApprovedOnly:  true,
		Query:         query,
	}, nil
}

func (f *visibilityFilter) CanSee(ctx context.Context, viewer models.Viewer, content models.Content) (bool, error) {
	if viewer.Role.Staff() {
		return true, nil
	}
	set, err := f.subscriptions(ctx, viewer)
	if err != nil {
		return false, err
	}
	return Visible(viewer, set, content), nil
}

func (f *visibilityFilter) subscriptions(ctx context.Context, viewer models.Viewer) (models.SubscriptionSet, error) {
	subs, err := f.subRepo.ListActive(ctx, viewer.UserID)
	if err != nil {
		return models.SubscriptionSet{}, models.NewInternalError(err, "failed to load subscriptions")
	}
	return models.NewSubscriptionSet(subs), nil
}

// Visible reports whether content passes the filter for a viewer with the
// given active subscriptions.
func Visible(viewer models.Viewer, set models.SubscriptionSet, content models.Content) bool {
	if viewer.Role.Staff() {
		return true
	}
	if !content.Published() {
		return false
	}
	return set.Has(models.JournalistTarget(content.OwnerID())) ||
		set.Has(models.PublisherTarget(content.OwnerPublisherID()))
}
