package notifier

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"yournews/logging"
)

type Message struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPMailer sends plain text mail through an SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	contents := prepMailContents(
		strings.Join(msg.To, ", "),
		makeHeaderAddress(m.cfg.FromAddress, m.cfg.FromName),
		msg.Subject,
		msg.Body,
	)
	return smtp.SendMail(fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port), auth, m.cfg.FromAddress, msg.To, contents)
}

// LogMailer only logs messages. Used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	logging.FromContext(ctx).Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("Email (not sent, SMTP unconfigured)")
	return nil
}

func makeHeaderAddress(email, fullname string) string {
	if fullname == "" {
		return email
	}
	encoded := mime.BEncoding.Encode("utf-8", fullname)
	if encoded == fullname {
		encoded = fmt.Sprintf("\"%s\"", strings.ReplaceAll(encoded, `"`, `\"`))
	}
	return fmt.Sprintf("%s <%s>", encoded, email)
}

func prepMailContents(toLine, fromLine, subject, body string) []byte {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("To: %s\r\n", toLine))
	builder.WriteString(fmt.Sprintf("From: %s\r\n", fromLine))
	builder.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z)))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(builder.String())
}
