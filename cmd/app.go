package cmd

import (
	"yournews/config"
	"yournews/notifier"

	"gorm.io/gorm"
)

func openDB(cfg *config.Config) *gorm.DB {
	db, err := config.InitDB(cfg)
	if err != nil {
		loggingFatal("Failed to connect to database", err)
	}
	return db
}

func newSocialPoster(cfg *config.Config) notifier.SocialPoster {
	return notifier.NewSocialPoster(notifier.TwitterConfig{
		Enabled:     cfg.Notify.SocialEnabled,
		APIURL:      cfg.Notify.TwitterAPIURL,
		AccessToken: cfg.Notify.TwitterAccessToken,
	})
}

func newMailer(cfg *config.Config) notifier.Mailer {
	if !cfg.Notify.SMTPConfigured() {
		return notifier.LogMailer{}
	}
	return notifier.NewSMTPMailer(notifier.SMTPConfig{
		Host:        cfg.Notify.SMTPHost,
		Port:        cfg.Notify.SMTPPort,
		Username:    cfg.Notify.SMTPUsername,
		Password:    cfg.Notify.SMTPPassword,
		FromAddress: cfg.Notify.EmailFromAddress,
		FromName:    cfg.Notify.EmailFromName,
	})
}

func newNotifier(cfg *config.Config) *notifier.Notifier {
	return notifier.New(notifier.Config{
		Async:       cfg.Notify.Async,
		Workers:     cfg.Notify.Workers,
		QueueSize:   cfg.Notify.QueueSize,
		MaxAttempts: cfg.Notify.MaxAttempts,
	}, newMailer(cfg), newSocialPoster(cfg))
}
