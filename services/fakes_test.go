package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"yournews/models"
	"yournews/notifier"

	"gorm.io/gorm"
)

type store struct {
	mu          sync.Mutex
	nextID      uint
	users       map[uint]*models.User
	publishers  map[uint]*models.Publisher
	subs        []*models.Subscription
	articles    map[uint]*models.Article
	newsletters map[uint]*models.Newsletter
	apps        map[uint]*models.RoleApplication
}

func newStore() *store {
	return &store{
		users:       map[uint]*models.User{},
		publishers:  map[uint]*models.Publisher{},
		articles:    map[uint]*models.Article{},
		newsletters: map[uint]*models.Newsletter{},
		apps:        map[uint]*models.RoleApplication{},
	}
}

func (s *store) id() uint {
	s.nextID++
	return s.nextID
}

func (s *store) addPublisher(name string) *models.Publisher {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Publisher{ID: s.id(), Name: name}
	s.publishers[p.ID] = p
	return p
}

func (s *store) addUser(name string, role models.UserRole, publisher *models.Publisher) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: s.id(), Username: name, Email: name + "@example.com", Role: role}
	if publisher != nil {
		id := publisher.ID
		u.PublisherID = &id
		u.Publisher = publisher
	}
	s.users[u.ID] = u
	return u
}

func (s *store) subscribe(reader *models.User, target models.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsert(reader.ID, target)
}

func (s *store) upsert(readerID uint, target models.Target) *models.Subscription {
	for _, sub := range s.subs {
		if sub.ReaderID == readerID && sub.TargetType == target.Type && sub.TargetID == target.ID {
			sub.Active = true
			return sub
		}
	}
	sub := &models.Subscription{ID: s.id(), ReaderID: readerID, TargetType: target.Type, TargetID: target.ID, Active: true}
	s.subs = append(s.subs, sub)
	return sub
}

func (s *store) addArticle(author *models.User, status models.ArticleStatus, createdAt time.Time) *models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &models.Article{
		ID:           s.id(),
		Title:        "article by " + author.Username,
		Content:      "body",
		JournalistID: author.ID,
		PublisherID:  *author.PublisherID,
		Status:       status,
		CreatedAt:    createdAt,
	}
	s.articles[a.ID] = a
	return a
}

func (s *store) activeCount(readerID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, sub := range s.subs {
		if sub.ReaderID == readerID && sub.Active {
			n++
		}
	}
	return n
}

func inScope(scope models.ContentScope, c models.Content, hasStatus bool, status models.ArticleStatus) bool {
	if !scope.Unrestricted {
		match := false
		for _, id := range scope.JournalistIDs {
			match = match || c.OwnerID() == id
		}
		for _, id := range scope.PublisherIDs {
			match = match || c.OwnerPublisherID() == id
		}
		if !match {
			return false
		}
	}
	if hasStatus {
		if scope.ApprovedOnly && status != models.StatusApproved {
			return false
		}
		if !scope.ApprovedOnly && scope.Query.Status != "" && status != scope.Query.Status {
			return false
		}
	}
	if q := scope.Query.JournalistID; q != nil && c.OwnerID() != *q {
		return false
	}
	if q := scope.Query.PublisherID; q != nil && c.OwnerPublisherID() != *q {
		return false
	}
	return true
}

type fakeUserRepo struct{ s *store }

func (r fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = r.s.id()
	copied := *user
	r.s.users[user.ID] = &copied
	return nil
}

func (r fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) find(match func(*models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r fakeUserRepo) ListJournalists(ctx context.Context) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, u := range r.s.users {
		if u.Role == models.RoleJournalist {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r fakeUserRepo) GetJournalist(ctx context.Context, id uint) (*models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil || u.Role != models.RoleJournalist {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r fakeUserRepo) ChangeRole(ctx context.Context, change models.RoleChange) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.applyRoleChange(change)
}

func (s *store) applyRoleChange(change models.RoleChange) (*models.User, error) {
	u, ok := s.users[change.UserID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if u.Role == models.RoleReader && change.NewRole != models.RoleReader {
		for _, sub := range s.subs {
			if sub.ReaderID == u.ID {
				sub.Active = false
			}
		}
	}
	publisherID := change.PublisherID
	if change.NewRole == models.RolePublisher && publisherID == nil && change.PublisherName != "" {
		p := &models.Publisher{ID: s.id(), Name: change.PublisherName}
		s.publishers[p.ID] = p
		publisherID = &p.ID
	}
	u.Role = change.NewRole
	u.PublisherID = publisherID
	copied := *u
	return &copied, nil
}

type fakePublisherRepo struct{ s *store }

func (r fakePublisherRepo) Create(ctx context.Context, p *models.Publisher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	copied := *p
	r.s.publishers[p.ID] = &copied
	return nil
}

func (r fakePublisherRepo) GetByID(ctx context.Context, id uint) (*models.Publisher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.publishers[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakePublisherRepo) GetAll(ctx context.Context) ([]models.Publisher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Publisher
	for _, p := range r.s.publishers {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeSubRepo struct{ s *store }

func (r fakeSubRepo) Upsert(ctx context.Context, readerID uint, target models.Target) (*models.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *r.s.upsert(readerID, target)
	return &copied, nil
}

func (r fakeSubRepo) Deactivate(ctx context.Context, readerID uint, target models.Target) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sub := range r.s.subs {
		if sub.ReaderID == readerID && sub.TargetType == target.Type && sub.TargetID == target.ID && sub.Active {
			sub.Active = false
			return true, nil
		}
	}
	return false, nil
}

func (r fakeSubRepo) ListActive(ctx context.Context, readerID uint) ([]models.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Subscription
	for _, sub := range r.s.subs {
		if sub.ReaderID == readerID && sub.Active {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (r fakeSubRepo) ListSubscribers(ctx context.Context, journalistID, publisherID uint) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, sub := range r.s.subs {
		if !sub.Active {
			continue
		}
		if (sub.TargetType == models.TargetJournalist && sub.TargetID == journalistID) ||
			(sub.TargetType == models.TargetPublisher && sub.TargetID == publisherID) {
			if u := r.s.users[sub.ReaderID]; u != nil && u.Role == models.RoleReader {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

type fakeArticleRepo struct{ s *store }

func (r fakeArticleRepo) hydrate(a models.Article) models.Article {
	if u := r.s.users[a.JournalistID]; u != nil {
		a.Journalist = *u
	}
	if p := r.s.publishers[a.PublisherID]; p != nil {
		a.Publisher = *p
	}
	return a
}

func (r fakeArticleRepo) Create(ctx context.Context, a *models.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.id()
	a.CreatedAt = time.Now()
	copied := *a
	r.s.articles[a.ID] = &copied
	return nil
}

func (r fakeArticleRepo) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	hydrated := r.hydrate(*a)
	return &hydrated, nil
}

func (r fakeArticleRepo) GetList(ctx context.Context, scope models.ContentScope) ([]models.Article, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Article
	for _, a := range r.s.articles {
		if inScope(scope, a, true, a.Status) {
			out = append(out, r.hydrate(*a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, int64(len(out)), nil
}

func (r fakeArticleRepo) UpdateContent(ctx context.Context, id uint, title, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a := r.s.articles[id]
	a.Title, a.Content = title, content
	return nil
}

func (r fakeArticleRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.articles, id)
	return nil
}

func (r fakeArticleRepo) CompareAndSetStatus(ctx context.Context, id uint, from, to models.ArticleStatus, reviewerID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.articles[id]
	if !ok || a.Status != from {
		return false, nil
	}
	a.Status = to
	a.ReviewedByID = &reviewerID
	return true, nil
}

type fakeNewsletterRepo struct{ s *store }

func (r fakeNewsletterRepo) hydrate(n models.Newsletter) models.Newsletter {
	if u := r.s.users[n.JournalistID]; u != nil {
		n.Journalist = *u
	}
	if p := r.s.publishers[n.PublisherID]; p != nil {
		n.Publisher = *p
	}
	return n
}

func (r fakeNewsletterRepo) Create(ctx context.Context, n *models.Newsletter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n.ID = r.s.id()
	n.CreatedAt = time.Now()
	copied := *n
	r.s.newsletters[n.ID] = &copied
	return nil
}

func (r fakeNewsletterRepo) GetByID(ctx context.Context, id uint) (*models.Newsletter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.newsletters[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	hydrated := r.hydrate(*n)
	return &hydrated, nil
}

func (r fakeNewsletterRepo) GetList(ctx context.Context, scope models.ContentScope) ([]models.Newsletter, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Newsletter
	for _, n := range r.s.newsletters {
		if inScope(scope, n, false, "") {
			out = append(out, r.hydrate(*n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r fakeNewsletterRepo) UpdateContent(ctx context.Context, id uint, title, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := r.s.newsletters[id]
	n.Title, n.Content = title, content
	return nil
}

func (r fakeNewsletterRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.newsletters, id)
	return nil
}

type fakeAppRepo struct{ s *store }

func (r fakeAppRepo) Create(ctx context.Context, app *models.RoleApplication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app.ID = r.s.id()
	copied := *app
	r.s.apps[app.ID] = &copied
	return nil
}

func (r fakeAppRepo) GetByID(ctx context.Context, id uint) (*models.RoleApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app, ok := r.s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *app
	if u := r.s.users[app.UserID]; u != nil {
		copied.User = *u
	}
	return &copied, nil
}

func (r fakeAppRepo) GetList(ctx context.Context, status models.ApplicationStatus) ([]models.RoleApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.RoleApplication
	for _, app := range r.s.apps {
		if status == "" || app.Status == status {
			out = append(out, *app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeAppRepo) HasPending(ctx context.Context, userID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, app := range r.s.apps {
		if app.UserID == userID && app.Status == models.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeAppRepo) Approve(ctx context.Context, appID uint, change models.RoleChange) (*models.User, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app := r.s.apps[appID]
	if app == nil || app.Status != models.ApplicationPending {
		return nil, false, nil
	}
	user, err := r.s.applyRoleChange(change)
	if err != nil {
		return nil, false, err
	}
	app.Status = models.ApplicationApproved
	return user, true, nil
}

func (r fakeAppRepo) Reject(ctx context.Context, appID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app := r.s.apps[appID]
	if app == nil || app.Status != models.ApplicationPending {
		return false, nil
	}
	app.Status = models.ApplicationRejected
	return true, nil
}

type fakeDispatcher struct {
	mu   sync.Mutex
	jobs []notifier.Job
	err  error
}

func (d *fakeDispatcher) Enqueue(ctx context.Context, job notifier.Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}

func (d *fakeDispatcher) recipients() [][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out [][]string
	for _, job := range d.jobs {
		var to []string
		for _, m := range job.Emails {
			to = append(to, m.To...)
		}
		out = append(out, to)
	}
	return out
}
