package mail

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/nikolayk812/partsdepot/internal/port"
	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) port.Mailer {
	return &smtpSender{cfg: cfg, send: smtp.SendMail}
}

func (s *smtpSender) Send(ctx context.Context, email port.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.send(addr, auth, s.cfg.From, email.To, buildMessage(s.cfg.From, email, time.Now())); err != nil {
		return fmt.Errorf("smtp.SendMail: %w", err)
	}

	return nil
}

func buildMessage(from string, email port.Email, now time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(email.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if email.HTML != "" {
		buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
		buf.WriteString(email.HTML)
	} else {
		buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
		buf.WriteString(email.Text)
	}

	return buf.Bytes()
}

type logSender struct {
	logger *zap.Logger
}

// NewLogSender is used when no SMTP host is configured; it only logs.
func NewLogSender(logger *zap.Logger) port.Mailer {
	return &logSender{logger: logger.Named("mail")}
}

func (s *logSender) Send(_ context.Context, email port.Email) error {
	s.logger.Info("email not sent, smtp is not configured",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("bytes", len(email.HTML)+len(email.Text)))
	return nil
}
