package email

import (
	"fmt"

	"grindup_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through gomail. When Email.Enabled is
// false in config, sends become no-ops so local and test runs don't
// need an SMTP server.
type SMTPProvider struct {
	cfg      *config.Config
	renderer *TemplateManager
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{
		cfg:      cfg,
		renderer: NewTemplateManager(),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if !p.cfg.Email.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	body, err := p.renderer.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:      to,
		Subject: subject,
		Body:    body,
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
