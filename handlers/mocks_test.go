package handlers

import (
	"context"

	"yournews/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ListJournalists(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) GetJournalist(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ChangeRole(ctx context.Context, change models.RoleChange) (*models.User, error) {
	args := m.Called(ctx, change)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Token(ctx context.Context, req models.TokenRequest) (*models.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) IssueToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockArticleService struct{ mock.Mock }

func (m *mockArticleService) CreateArticle(ctx context.Context, viewer models.Viewer, req models.ContentRequest) (*models.Article, error) {
	args := m.Called(ctx, viewer, req)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) GetArticles(ctx context.Context, viewer models.Viewer, query models.ContentQuery) ([]models.Article, int64, error) {
	args := m.Called(ctx, viewer, query)
	list, _ := args.Get(0).([]models.Article)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockArticleService) GetArticle(ctx context.Context, viewer models.Viewer, id uint) (*models.Article, error) {
	args := m.Called(ctx, viewer, id)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) UpdateArticle(ctx context.Context, viewer models.Viewer, id uint, req models.ContentRequest) (*models.Article, error) {
	args := m.Called(ctx, viewer, id, req)
	a, _ := args.Get(0).(*models.Article)
	return a, args.Error(1)
}

func (m *mockArticleService) DeleteArticle(ctx context.Context, viewer models.Viewer, id uint) error {
	return m.Called(ctx, viewer, id).Error(0)
}

func (m *mockArticleService) ReviewArticle(ctx context.Context, viewer models.Viewer, id uint, decision models.ArticleStatus) (*models.ReviewResult, error) {
	args := m.Called(ctx, viewer, id, decision)
	r, _ := args.Get(0).(*models.ReviewResult)
	return r, args.Error(1)
}

type mockSubscriptionService struct{ mock.Mock }

func (m *mockSubscriptionService) Subscribe(ctx context.Context, viewer models.Viewer, target models.Target) error {
	return m.Called(ctx, viewer, target).Error(0)
}

func (m *mockSubscriptionService) Unsubscribe(ctx context.Context, viewer models.Viewer, target models.Target) error {
	return m.Called(ctx, viewer, target).Error(0)
}

func (m *mockSubscriptionService) ListSubscriptions(ctx context.Context, viewer models.Viewer) (*models.SubscriptionsResponse, error) {
	args := m.Called(ctx, viewer)
	r, _ := args.Get(0).(*models.SubscriptionsResponse)
	return r, args.Error(1)
}

type mockRoleService struct{ mock.Mock }

func (m *mockRoleService) Apply(ctx context.Context, viewer models.Viewer, req models.RoleApplicationRequest) (*models.RoleApplication, error) {
	args := m.Called(ctx, viewer, req)
	app, _ := args.Get(0).(*models.RoleApplication)
	return app, args.Error(1)
}

func (m *mockRoleService) GetApplications(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error) {
	args := m.Called(ctx, status)
	apps, _ := args.Get(0).([]models.RoleApplication)
	return apps, args.Error(1)
}

func (m *mockRoleService) ApproveApplication(ctx context.Context, id uint, req models.ApproveApplicationRequest) (*models.ApplicationResult, error) {
	args := m.Called(ctx, id, req)
	r, _ := args.Get(0).(*models.ApplicationResult)
	return r, args.Error(1)
}

func (m *mockRoleService) RejectApplication(ctx context.Context, id uint) (*models.ApplicationResult, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*models.ApplicationResult)
	return r, args.Error(1)
}

func (m *mockRoleService) ChangeRole(ctx context.Context, userID uint, req models.ChangeRoleRequest) (*models.User, error) {
	args := m.Called(ctx, userID, req)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
