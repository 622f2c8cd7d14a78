// Package notify delivers step-up verification codes out of band.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"news-publisher/internal/logger"
)

// SMTPSender emails verification codes through a plain SMTP relay.
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender creates an SMTPSender. addr is host:port of the relay.
func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from}
}

// SendCode emails a one-time code. The code itself is never logged.
func (s *SMTPSender) SendCode(ctx context.Context, email, code string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Your verification code\r\n\r\nYour verification code is %s. It expires shortly.\r\n",
		s.from, email, code,
	)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	logger.InfoContext(ctx, "verification code sent", slog.String("email", email))
	return nil
}

// LogSender writes the code to the application log instead of sending it.
// Development only.
type LogSender struct{}

// NewLogSender creates a LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// SendCode logs the code.
func (s *LogSender) SendCode(ctx context.Context, email, code string) error {
	logger.InfoContext(ctx, "verification code issued",
		slog.String("email", email),
		slog.String("code", code))
	return nil
}
