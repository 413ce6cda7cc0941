package services

import (
	"context"
	"fmt"

	"yournews/logging"
	"yournews/models"
	"yournews/notifier"
	"yournews/repositories"
)

type RoleService interface {
	Apply(ctx context.Context, viewer models.Viewer, req models.RoleApplicationRequest) (*models.RoleApplication, error)
	GetApplications(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error)
	// ApproveApplication grants the applied role. Journalists and editors need
	// a publisher; a publisher applicant gets a new publisher unless one is
	// given.
	ApproveApplication(ctx context.Context, id uint, req models.ApproveApplicationRequest) (*models.ApplicationResult, error)
	RejectApplication(ctx context.Context, id uint) (*models.ApplicationResult, error)
	ChangeRole(ctx context.Context, userID uint, req models.ChangeRoleRequest) (*models.User, error)
}

type roleService struct {
	appRepo       repositories.RoleApplicationRepository
	userRepo      repositories.UserRepository
	publisherRepo repositories.PublisherRepository
	dispatcher    Dispatcher
}

func NewRoleService(
	appRepo repositories.RoleApplicationRepository,
	userRepo repositories.UserRepository,
	publisherRepo repositories.PublisherRepository,
	dispatcher Dispatcher,
) RoleService {
	return &roleService{
		appRepo:       appRepo,
		userRepo:      userRepo,
		publisherRepo: publisherRepo,
		dispatcher:    dispatcher,
	}
}

func (s *roleService) Apply(ctx context.Context, viewer models.Viewer, req models.RoleApplicationRequest) (*models.RoleApplication, error) {
	if viewer.Role != models.RoleReader {
		return nil, models.ErrorForbidden{Message: "only readers can apply for a role"}
	}
	if req.AppliedRole == models.RoleReader || req.AppliedRole == models.RoleAdmin || !req.AppliedRole.Valid() {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("cannot apply for role %q", req.AppliedRole)}
	}

	pending, err := s.appRepo.HasPending(ctx, viewer.UserID)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to check pending applications")
	}
	if pending {
		return nil, models.ErrorConflict{Message: "you already have a pending application"}
	}

	app := &models.RoleApplication{
		UserID:      viewer.UserID,
		AppliedRole: req.AppliedRole,
		Motivation:  req.Motivation,
		Status:      models.ApplicationPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, models.NewInternalError(err, "failed to create role application")
	}
	return app, nil
}

func (s *roleService) GetApplications(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error) {
	switch status {
	case "", models.ApplicationPending, models.ApplicationApproved, models.ApplicationRejected:
	default:
		return nil, models.ErrorValidation{Message: fmt.Sprintf("unknown application status %q", status)}
	}
	apps, err := s.appRepo.GetList(ctx, status)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to list role applications")
	}
	return apps, nil
}

func (s *roleService) ApproveApplication(ctx context.Context, id uint, req models.ApproveApplicationRequest) (*models.ApplicationResult, error) {
	app, err := s.pendingApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := s.roleChange(ctx, app.User, app.AppliedRole, req.PublisherID)
	if err != nil {
		return nil, err
	}

	user, ok, err := s.appRepo.Approve(ctx, app.ID, change)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to approve role application %d", id)
	}
	if !ok {
		return nil, models.ErrorConflict{Message: "role application was already decided"}
	}
	app.Status = models.ApplicationApproved

	logging.FromContext(ctx).Info().
		Uint("application_id", app.ID).
		Uint("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("Role application approved")

	job := notifier.Job{
		Name:   fmt.Sprintf("role application %d approved", app.ID),
		Emails: []notifier.Message{notifier.RoleApprovedEmail(app.User, app.AppliedRole)},
	}
	return &models.ApplicationResult{
		Application: app,
		User:        user,
		Warnings:    dispatch(ctx, s.dispatcher, job),
	}, nil
}

func (s *roleService) RejectApplication(ctx context.Context, id uint) (*models.ApplicationResult, error) {
	app, err := s.pendingApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.appRepo.Reject(ctx, app.ID)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to reject role application %d", id)
	}
	if !ok {
		return nil, models.ErrorConflict{Message: "role application was already decided"}
	}
	app.Status = models.ApplicationRejected

	job := notifier.Job{
		Name:   fmt.Sprintf("role application %d rejected", app.ID),
		Emails: []notifier.Message{notifier.RoleRejectedEmail(app.User, app.AppliedRole)},
	}
	return &models.ApplicationResult{
		Application: app,
		Warnings:    dispatch(ctx, s.dispatcher, job),
	}, nil
}

func (s *roleService) ChangeRole(ctx context.Context, userID uint, req models.ChangeRoleRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "user")
	}

	change, err := s.roleChange(ctx, *user, req.Role, req.PublisherID)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepo.ChangeRole(ctx, change)
	if err != nil {
		return nil, models.NewInternalError(err, "failed to change role of user %d", userID)
	}

	logging.FromContext(ctx).Info().
		Uint("user_id", updated.ID).
		Str("from", string(user.Role)).
		Str("to", string(updated.Role)).
		Msg("User role changed")
	return updated, nil
}

func (s *roleService) pendingApplication(ctx context.Context, id uint) (*models.RoleApplication, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "role application")
	}
	if app.Status != models.ApplicationPending {
		return nil, models.ErrorConflict{Message: fmt.Sprintf("role application is already %s", app.Status)}
	}
	return app, nil
}

// roleChange validates the publisher affiliation the new role needs.
func (s *roleService) roleChange(ctx context.Context, user models.User, role models.UserRole, publisherID *uint) (models.RoleChange, error) {
	change := models.RoleChange{UserID: user.ID, NewRole: role}

	if !role.Valid() {
		return change, models.ErrorValidation{Message: fmt.Sprintf("unknown role %q", role)}
	}

	if role.RequiresPublisher() && publisherID == nil {
		return change, models.ErrorValidation{
			Message: "publisher_id is required for this role",
			Fields:  map[string][]string{"publisher_id": {"publisher_id is required for this role"}},
		}
	}

	if publisherID != nil && (role.RequiresPublisher() || role == models.RolePublisher) {
		if _, err := s.publisherRepo.GetByID(ctx, *publisherID); err != nil {
			return change, storeError(err, "publisher")
		}
		change.PublisherID = publisherID
	}

	if role == models.RolePublisher && change.PublisherID == nil {
		if user.Role == models.RolePublisher && user.PublisherID != nil {
			change.PublisherID = user.PublisherID
		} else {
			change.PublisherName = fmt.Sprintf("%s Publishing", user.Username)
		}
	}
	return change, nil
}
