package email

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Attachment is a file sent along with a message, read from disk at send
// time.
type Attachment struct {
	Filename string
	Path     string
}

// Sender is the outbound notification channel. A send failure must be
// reported to the caller but never rolls back the document that triggered
// the notification.
type Sender interface {
	Send(recipient, subject, body string, attachments []Attachment) error
}

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPSender implements Sender over plain SMTP.
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{config: config, logger: logger}
}

// Send builds a MIME message (multipart when attachments are present) and
// delivers it. With no SMTP credentials configured the message is logged
// and dropped, so local development works without a mail account.
func (s *SMTPSender) Send(recipient, subject, body string, attachments []Attachment) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("to", recipient).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	msg, err := s.buildMessage(recipient, subject, body, attachments)
	if err != nil {
		return err
	}

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{recipient}, msg); err != nil {
		s.logger.Error().Err(err).Str("to", recipient).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("to", recipient).Str("subject", subject).Msg("Email sent")
	return nil
}

const mimeBoundary = "bschool-mail-boundary"

func (s *SMTPSender) buildMessage(recipient, subject, body string, attachments []Attachment) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(attachments) == 0 {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(body)
		return []byte(b.String()), nil
	}

	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mimeBoundary)

	fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	for _, att := range attachments {
		content, err := os.ReadFile(att.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", att.Path, err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(att.Filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		fmt.Fprintf(&b, "--%s\r\n", mimeBoundary)
		fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", att.Filename)

		encoded := base64.StdEncoding.EncodeToString(content)
		// 76-char lines per RFC 2045
		for len(encoded) > 76 {
			b.WriteString(encoded[:76])
			b.WriteString("\r\n")
			encoded = encoded[76:]
		}
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
	fmt.Fprintf(&b, "--%s--\r\n", mimeBoundary)

	return []byte(b.String()), nil
}
