package services

import (
	"context"
	"time"

	"yournews/models"
)

type env struct {
	s          *store
	dispatcher *fakeDispatcher

	visibility  VisibilityFilter
	articles    ArticleService
	newsletters NewsletterService
	subs        SubscriptionService
	roles       RoleService
	directory   DirectoryService

	planet  *models.Publisher
	gazette *models.Publisher

	clark *models.User // journalist, planet
	vicki *models.User // journalist, gazette
	perry *models.User // editor, planet
	admin *models.User
	lois  *models.User // reader
	jimmy *models.User // reader
}

func newEnv() *env {
	s := newStore()
	e := &env{s: s, dispatcher: &fakeDispatcher{}}

	users := fakeUserRepo{s}
	publishers := fakePublisherRepo{s}
	subs := fakeSubRepo{s}

	e.visibility = NewVisibilityFilter(subs)
	e.articles = NewArticleService(fakeArticleRepo{s}, subs, e.visibility, e.dispatcher)
	e.newsletters = NewNewsletterService(fakeNewsletterRepo{s}, subs, e.visibility, e.dispatcher)
	e.subs = NewSubscriptionService(subs, users, publishers)
	e.roles = NewRoleService(fakeAppRepo{s}, users, publishers, e.dispatcher)
	e.directory = NewDirectoryService(users, publishers)

	e.planet = s.addPublisher("Daily Planet")
	e.gazette = s.addPublisher("Gotham Gazette")
	e.clark = s.addUser("clark", models.RoleJournalist, e.planet)
	e.vicki = s.addUser("vicki", models.RoleJournalist, e.gazette)
	e.perry = s.addUser("perry", models.RoleEditor, e.planet)
	e.admin = s.addUser("admin", models.RoleAdmin, nil)
	e.lois = s.addUser("lois", models.RoleReader, nil)
	e.jimmy = s.addUser("jimmy", models.RoleReader, nil)
	return e
}

func (e *env) pending(author *models.User) *models.Article {
	return e.s.addArticle(author, models.StatusPending, time.Now())
}

var ctx = context.Background()

func ptr(id uint) *uint { return &id }
