package email

import (
	"context"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider delivers a single rendered email.
type Provider interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpProvider struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPProvider builds a gomail-backed provider. When the SMTP host
// is not configured it falls back to a log-only provider so local
// environments work without a mail server.
func NewSMTPProvider(cfg config.EmailConfig) Provider {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP host not configured, emails will only be logged")
		return &logProvider{}
	}
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = cfg.FromName + " <" + cfg.FromEmail + ">"
	}
	return &smtpProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *smtpProvider) Send(ctx context.Context, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	// gomail has no context support, so the dial-and-send runs in its
	// own goroutine and the caller's deadline is honored here.
	done := make(chan error, 1)
	go func() {
		done <- p.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type logProvider struct{}

func (p *logProvider) Send(_ context.Context, to, subject, _ string) error {
	logger.Info("email skipped (no SMTP configured)", "to", to, "subject", subject)
	return nil
}
