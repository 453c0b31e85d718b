package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrNotConfigured = errors.New("smtp credentials are not configured")

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, message *Message) error
}

type Message struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// TLS dials an implicit TLS connection (port 465). Otherwise the relay
	// upgrades with STARTTLS when it offers it.
	TLS bool
}

type SMTPSender struct {
	config   SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	s := &SMTPSender{config: config}
	if config.TLS {
		s.sendMail = s.sendMailTLS
	} else {
		s.sendMail = smtp.SendMail
	}
	return s
}

func (s *SMTPSender) Send(ctx context.Context, message *Message) error {
	if s.config.Username == "" || s.config.Password == "" {
		return ErrNotConfigured
	}
	if len(message.To) == 0 {
		return errors.New("message has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := s.config.FromEmail
	if from == "" {
		from = s.config.Username
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if err := s.sendMail(addr, auth, from, message.To, buildMessage(s.config.FromName, from, message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func buildMessage(fromName, fromEmail string, message *Message) []byte {
	var b strings.Builder

	if fromName != "" {
		fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, fromEmail)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", fromEmail)
	}
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(message.To, ", "))
	if message.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", message.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", message.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(message.HTMLBody)

	return []byte(b.String())
}

func (s *SMTPSender) sendMailTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err := client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to add recipient %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data connection: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data connection: %w", err)
	}

	return client.Quit()
}
