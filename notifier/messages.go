package notifier

import (
	"fmt"
	"strings"

	"yournews/models"
)

const (
	socialMaxLen       = 280
	newsletterPreview  = 200
	socialTruncatedLen = 275
)

func ArticleStatusEmail(journalist models.User, article models.Article) Message {
	status := string(article.Status)
	return Message{
		To:      []string{journalist.Email},
		Subject: fmt.Sprintf("Your Article '%s' has been %s", article.Title, capitalize(status)),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour article titled '%s' has been %s by the editor.\n\nThank you for contributing to YourNews!",
			journalist.Username, article.Title, status,
		),
	}
}

func NewArticleEmail(subscriber models.User, article models.Article) Message {
	return Message{
		To:      []string{subscriber.Email},
		Subject: fmt.Sprintf("New Article: %s", article.Title),
		Body: fmt.Sprintf(
			"Hi %s,\n\nA new article has been published by %s!\n\nTitle: %s\nPublisher: %s\n\nRead the full article at YourNews.\n\nBest regards,\nThe YourNews Team",
			subscriber.Username, article.Journalist.DisplayName(), article.Title, article.Publisher.Name,
		),
	}
}

func NewNewsletterEmail(subscriber models.User, newsletter models.Newsletter) Message {
	return Message{
		To:      []string{subscriber.Email},
		Subject: fmt.Sprintf("New Newsletter: %s", newsletter.Title),
		Body: fmt.Sprintf(
			"Hi %s,\n\nA new newsletter has been published by %s!\n\nTitle: %s\nPublisher: %s\n\nContent Preview:\n%s\n\nRead the full newsletter at YourNews.\n\nBest regards,\nThe YourNews Team",
			subscriber.Username, newsletter.Journalist.DisplayName(), newsletter.Title, newsletter.Publisher.Name,
			Preview(newsletter.Content, newsletterPreview),
		),
	}
}

func NewsletterConfirmationEmail(journalist models.User, newsletter models.Newsletter) Message {
	return Message{
		To:      []string{journalist.Email},
		Subject: fmt.Sprintf("Newsletter Published: %s", newsletter.Title),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour newsletter '%s' has been successfully published!\n\nYour newsletter is now live and visible to all subscribers.\n\nThank you for contributing to YourNews!\n\nBest regards,\nThe YourNews Team",
			journalist.Username, newsletter.Title,
		),
	}
}

func RoleApprovedEmail(user models.User, role models.UserRole) Message {
	return Message{
		To:      []string{user.Email},
		Subject: "Your role application was approved",
		Body: fmt.Sprintf(
			"Hi %s,\n\nCongratulations! Your application for the role '%s' has been approved.\nYou can now log in and start using your new permissions.",
			user.Username, role,
		),
	}
}

func RoleRejectedEmail(user models.User, role models.UserRole) Message {
	return Message{
		To:      []string{user.Email},
		Subject: "Your role application was rejected",
		Body: fmt.Sprintf(
			"Hi %s,\n\nWe're sorry to inform you that your application for the role '%s' has been rejected.\nFeel free to apply again in the future.",
			user.Username, role,
		),
	}
}

// ArticleSocialText is the text of the post announcing an approved article.
func ArticleSocialText(article models.Article) string {
	text := fmt.Sprintf("New article published: %s\nBy: %s", article.Title, article.Journalist.DisplayName())
	runes := []rune(text)
	if len(runes) > socialMaxLen {
		return string(runes[:socialTruncatedLen]) + "..."
	}
	return text
}

// Preview cuts s to max runes and marks the cut with an ellipsis.
func Preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
