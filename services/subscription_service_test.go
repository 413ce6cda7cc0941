package services

import (
	"testing"

	"yournews/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_SubscribeTwiceKeepsOneRow(t *testing.T) {
	e := newEnv()
	target := models.JournalistTarget(e.clark.ID)

	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), target))
	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), target))

	assert.Len(t, e.s.subs, 1)
	assert.Equal(t, 1, e.s.activeCount(e.lois.ID))
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	e := newEnv()
	target := models.PublisherTarget(e.planet.ID)

	// nothing to deactivate yet
	require.NoError(t, e.subs.Unsubscribe(ctx, e.lois.Viewer(), target))

	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), target))
	require.NoError(t, e.subs.Unsubscribe(ctx, e.lois.Viewer(), target))
	assert.Zero(t, e.s.activeCount(e.lois.ID))

	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), target))
	assert.Len(t, e.s.subs, 1)
	assert.Equal(t, 1, e.s.activeCount(e.lois.ID))
}

func TestSubscriptionService_Rules(t *testing.T) {
	e := newEnv()

	var forbidden models.ErrorForbidden
	err := e.subs.Subscribe(ctx, e.perry.Viewer(), models.PublisherTarget(e.planet.ID))
	assert.ErrorAs(t, err, &forbidden)

	var notFound models.ErrorNotFound
	err = e.subs.Subscribe(ctx, e.lois.Viewer(), models.JournalistTarget(e.perry.ID))
	assert.ErrorAs(t, err, &notFound, "an editor is not a journalist target")

	err = e.subs.Subscribe(ctx, e.lois.Viewer(), models.PublisherTarget(9999))
	assert.ErrorAs(t, err, &notFound)
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	e := newEnv()
	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), models.JournalistTarget(e.clark.ID)))
	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), models.PublisherTarget(e.gazette.ID)))

	resp, err := e.subs.ListSubscriptions(ctx, e.lois.Viewer())
	require.NoError(t, err)
	require.Len(t, resp.Journalists, 1)
	assert.Equal(t, "clark", resp.Journalists[0].Username)
	assert.Equal(t, "Daily Planet", resp.Journalists[0].PublisherName)
	require.Len(t, resp.Publishers, 1)
	assert.Equal(t, "Gotham Gazette", resp.Publishers[0].Name)

	resp, err = e.subs.ListSubscriptions(ctx, e.jimmy.Viewer())
	require.NoError(t, err)
	assert.Empty(t, resp.Journalists)
	assert.Empty(t, resp.Publishers)
}

func TestSubscriptionService_ReaderPromotionDeactivatesSubscriptions(t *testing.T) {
	e := newEnv()
	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), models.JournalistTarget(e.clark.ID)))
	require.NoError(t, e.subs.Subscribe(ctx, e.lois.Viewer(), models.PublisherTarget(e.planet.ID)))

	user, err := e.roles.ChangeRole(ctx, e.lois.ID, models.ChangeRoleRequest{
		Role:        models.RoleJournalist,
		PublisherID: ptr(e.planet.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleJournalist, user.Role)
	assert.Zero(t, e.s.activeCount(e.lois.ID))
}
