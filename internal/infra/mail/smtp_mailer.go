// Package mail contains the worker-side activation mail sender.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"dailyfresh/config"
	"dailyfresh/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer implements the Mailer interface using net/smtp.
type smtpMailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	senderName string
	logger     *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.SMTP == nil {
		return nil, errors.New("smtp config must be provided")
	}
	smtpCfg := cfg.Mail.SMTP

	return &smtpMailer{
		host:       smtpCfg.Host,
		port:       smtpCfg.Port,
		username:   smtpCfg.Username,
		password:   smtpCfg.Password,
		from:       smtpCfg.From,
		senderName: smtpCfg.SenderName,
		logger:     logger,
	}, nil
}

// SendActivationEmail sends the registration activation email over SMTP.
func (m *smtpMailer) SendActivationEmail(ctx context.Context, email, username, activateURL string) error {
	m.logger.InfoContext(ctx, "sending activation email",
		slog.String("email", email),
		slog.String("smtpHost", m.host),
	)

	subject := "天天生鲜欢迎信息"

	htmlBody := fmt.Sprintf(`<h1>%s, 欢迎您成为天天生鲜注册会员</h1>
<p>请点击以下链接激活您的账户:</p>
<a href="%s">%s</a>`, username, activateURL, activateURL)

	plainBody := fmt.Sprintf(`%s, 欢迎您成为天天生鲜注册会员
请访问以下链接激活您的账户:
%s`, username, activateURL)

	from := m.from
	if m.senderName != "" {
		from = fmt.Sprintf("%s <%s>", m.senderName, m.from)
	}

	const boundary = "dailyfresh-mail-boundary"

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", email))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%s\r\n", boundary))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	msg.WriteString(plainBody)
	msg.WriteString("\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	if err := smtp.SendMail(addr, auth, m.from, []string{email}, []byte(msg.String())); err != nil {
		m.logger.ErrorContext(ctx, "failed to send activation email",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)

		return errors.Wrap(err, "smtp.SendMail failed")
	}

	m.logger.InfoContext(ctx, "activation email sent", slog.String("email", email))

	return nil
}
