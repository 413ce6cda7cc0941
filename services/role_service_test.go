package services

import (
	"testing"

	"yournews/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleService_Apply(t *testing.T) {
	e := newEnv()
	req := models.RoleApplicationRequest{AppliedRole: models.RoleJournalist, Motivation: "I write"}

	app, err := e.roles.Apply(ctx, e.lois.Viewer(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)

	_, err = e.roles.Apply(ctx, e.lois.Viewer(), req)
	var conflict models.ErrorConflict
	assert.ErrorAs(t, err, &conflict)

	_, err = e.roles.Apply(ctx, e.clark.Viewer(), req)
	var forbidden models.ErrorForbidden
	assert.ErrorAs(t, err, &forbidden)

	_, err = e.roles.Apply(ctx, e.jimmy.Viewer(), models.RoleApplicationRequest{AppliedRole: models.RoleAdmin})
	var invalid models.ErrorValidation
	assert.ErrorAs(t, err, &invalid)
}

func TestRoleService_ApproveJournalistNeedsPublisher(t *testing.T) {
	e := newEnv()
	app, err := e.roles.Apply(ctx, e.lois.Viewer(), models.RoleApplicationRequest{AppliedRole: models.RoleJournalist, Motivation: "x"})
	require.NoError(t, err)

	_, err = e.roles.ApproveApplication(ctx, app.ID, models.ApproveApplicationRequest{})
	var invalid models.ErrorValidation
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "publisher_id")

	result, err := e.roles.ApproveApplication(ctx, app.ID, models.ApproveApplicationRequest{PublisherID: ptr(e.gazette.ID)})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, result.Application.Status)
	assert.Equal(t, models.RoleJournalist, result.User.Role)
	require.NotNil(t, result.User.PublisherID)
	assert.Equal(t, e.gazette.ID, *result.User.PublisherID)
	assert.Equal(t, [][]string{{e.lois.Email}}, e.dispatcher.recipients())

	_, err = e.roles.ApproveApplication(ctx, app.ID, models.ApproveApplicationRequest{PublisherID: ptr(e.gazette.ID)})
	var conflict models.ErrorConflict
	assert.ErrorAs(t, err, &conflict)
}

func TestRoleService_ApprovePublisherCreatesPublisher(t *testing.T) {
	e := newEnv()
	e.s.subscribe(e.jimmy, models.PublisherTarget(e.planet.ID))
	app, err := e.roles.Apply(ctx, e.jimmy.Viewer(), models.RoleApplicationRequest{AppliedRole: models.RolePublisher, Motivation: "x"})
	require.NoError(t, err)

	result, err := e.roles.ApproveApplication(ctx, app.ID, models.ApproveApplicationRequest{})
	require.NoError(t, err)
	require.NotNil(t, result.User.PublisherID)

	publisher, err := e.directory.GetPublisher(ctx, *result.User.PublisherID)
	require.NoError(t, err)
	assert.Equal(t, "jimmy Publishing", publisher.Name)
	assert.Zero(t, e.s.activeCount(e.jimmy.ID))
}

func TestRoleService_Reject(t *testing.T) {
	e := newEnv()
	app, err := e.roles.Apply(ctx, e.lois.Viewer(), models.RoleApplicationRequest{AppliedRole: models.RoleEditor, Motivation: "x"})
	require.NoError(t, err)

	result, err := e.roles.RejectApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, result.Application.Status)
	assert.Contains(t, e.dispatcher.jobs[0].Emails[0].Subject, "rejected")

	pending, err := e.roles.GetApplications(ctx, models.ApplicationPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := e.roles.GetApplications(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = e.roles.GetApplications(ctx, "unknown")
	var invalid models.ErrorValidation
	assert.ErrorAs(t, err, &invalid)
}

func TestRoleService_ChangeRoleToReaderClearsPublisher(t *testing.T) {
	e := newEnv()
	user, err := e.roles.ChangeRole(ctx, e.clark.ID, models.ChangeRoleRequest{Role: models.RoleReader})
	require.NoError(t, err)
	assert.Equal(t, models.RoleReader, user.Role)
	assert.Nil(t, user.PublisherID)

	_, err = e.roles.ChangeRole(ctx, 9999, models.ChangeRoleRequest{Role: models.RoleReader})
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)
}
