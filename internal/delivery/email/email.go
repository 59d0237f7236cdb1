package email

import (
	"context"
	"fmt"

	"wedgram-api/internal/config"
	"wedgram-api/pkg/logger"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers invitation mail over SMTP. An unconfigured sender reports
// Configured() == false and the dispatch flow skips it silently.
type Sender struct {
	cfg config.SMTPConfig
	log logger.Logger
}

func New(cfg config.SMTPConfig, log logger.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

func (s *Sender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.User != ""
}

func (s *Sender) SendInvitation(ctx context.Context, address, name, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", address)
	m.SetHeader("Subject", "You're invited!")
	m.SetBody("text/html", invitationBody(name, link))

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send invitation mail: %w", err)
	}

	s.log.Debug("email: invitation sent", "to", address)
	return nil
}

func invitationBody(name, link string) string {
	return fmt.Sprintf(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Dear %s,</h2>
  <p>You are warmly invited to our wedding! Please open your personal invitation
  and let us know whether you can make it.</p>
  <p style="text-align: center; margin: 32px 0;">
    <a href="%s" style="background: #667eea; color: #fff; padding: 12px 32px; border-radius: 6px; text-decoration: none;">Open invitation</a>
  </p>
  <p>If the button does not work, copy this link into your browser:<br>%s</p>
</div>`, name, link, link)
}
