package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SMTPAdapter struct {
	host     string
	port     int
	user     string
	password string
	now      func() time.Time
}

func NewSMTPAdapter(cfg config.Config, log logger.Logger) (*SMTPAdapter, error) {
	if cfg.Mail.User == "" || cfg.Mail.Password == "" {
		return nil, fmt.Errorf("SMTP credentials not configured")
	}
	if cfg.Mail.Host == "" {
		return nil, fmt.Errorf("SMTP host not configured")
	}
	if cfg.Mail.Receiver == "" {
		return nil, fmt.Errorf("mail receiver not configured")
	}

	log.Info("SMTP mailer initialized", zap.String("host", cfg.Mail.Host), zap.Int("port", cfg.Mail.Port))
	return &SMTPAdapter{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		user:     cfg.Mail.User,
		password: cfg.Mail.Password,
		now:      time.Now,
	}, nil
}

func (a *SMTPAdapter) Send(ctx context.Context, email service.Email) error {
	msg, err := buildMessage(email, senderDomain(a.user), a.now())
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(a.host, strconv.Itoa(a.port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return fmt.Errorf("set smtp deadline: %w", err)
		}
	}

	c, err := smtp.NewClient(conn, a.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: a.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if err := c.Auth(smtp.PlainAuth("", a.user, a.password, a.host)); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := c.Mail(a.user); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(email.To); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp end DATA: %w", err)
	}
	return c.Quit()
}
