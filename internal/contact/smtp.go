package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

// SMTPConfig holds the mailbox the contact form delivers to.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// SMTPRelay delivers the message directly over SMTP. The relay credentials
// are unused.
type SMTPRelay struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPRelay(cfg SMTPConfig) *SMTPRelay {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPRelay{cfg: cfg, sendMail: smtp.SendMail}
}

func (r *SMTPRelay) Send(_ context.Context, _ Credentials, p Payload) error {
	if r.cfg.User == "" || r.cfg.Pass == "" {
		return errors.New("SMTP credentials not configured")
	}
	to := r.cfg.To
	if to == "" {
		to = r.cfg.User
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Pass, r.cfg.Host)
	if err := r.sendMail(r.cfg.Host+":"+r.cfg.Port, auth, r.cfg.User, []string{to}, composeMessage(r.cfg.User, to, p)); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

func composeMessage(from, to string, p Payload) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Sent: %s
Message:
%s

---
Sent from your portfolio contact form
`, p.Name, p.Email, p.Time, p.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + headerSafe.Replace(p.Title) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe.Replace(p.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
