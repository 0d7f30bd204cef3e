package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

var (
	ErrAuth    = errors.New("smtp authentication failed")
	ErrConnect = errors.New("smtp connection failed")
	ErrTimeout = errors.New("smtp connection timed out")
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	SenderName string
	Domain     string
}

type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	log    *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	// Port 465 is implicit TLS; STARTTLS is negotiated on other ports.
	dialer.SSL = cfg.Port == 465

	return &Mailer{
		cfg:    cfg,
		dialer: dialer,
		log:    log,
	}
}

// Send relays one message over SMTP and returns the generated Message-ID.
// The plain-text body is also rendered into a small branded HTML wrapper.
func (m *Mailer) Send(ctx context.Context, to, subject, message string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.cfg.Domain)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.Username, m.cfg.SenderName))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Message-Id", messageID)
	msg.SetHeader("X-Mailer", m.cfg.SenderName+" Contact System")
	msg.SetHeader("X-Priority", "3")
	msg.SetHeader("Importance", "Normal")
	msg.SetHeader("List-Unsubscribe", fmt.Sprintf("<mailto:%s?subject=Unsubscribe>", m.cfg.Username))
	msg.SetBody("text/plain", message)
	msg.AddAlternative("text/html", m.renderHTML(subject, message))

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return "", ErrTimeout
	case err := <-done:
		if err != nil {
			m.log.Error("mailer: send failed", slog.String("error", err.Error()))
			return "", classify(err)
		}
	}

	m.log.Info("mailer: sent", slog.String("message_id", messageID))
	return messageID, nil
}

func (m *Mailer) renderHTML(subject, message string) string {
	var body strings.Builder
	for _, para := range strings.Split(message, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		escaped := html.EscapeString(para)
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
		body.WriteString("<p>" + escaped + "</p>\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="margin: 20px 0;">
%s  </div>
  <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
  <div style="text-align: center; color: #666; font-size: 12px;">
    <p>This email was sent from %s's contact inquiry system.</p>
    <p>If you have any questions, please contact us at <a href="mailto:info@%s" style="color: #667eea;">info@%s</a></p>
  </div>
</body>
</html>`,
		html.EscapeString(subject), body.String(), m.cfg.SenderName, m.cfg.Domain, m.cfg.Domain)
}

// classify maps transport failures onto the three sentinel causes the
// endpoint reports distinctly; everything else passes through.
func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "auth"):
		return ErrAuth
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return ErrConnect
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return ErrTimeout
	default:
		return err
	}
}
