package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// GmailAdapter sends through the Gmail API as the account owning the
// refresh token.
type GmailAdapter struct {
	svc    *gmail.Service
	sender string
	now    func() time.Time
}

func NewGmailAdapter(ctx context.Context, cfg config.Config, log logger.Logger) (*GmailAdapter, error) {
	g := cfg.Mail.Gmail
	if g.ClientID == "" || g.ClientSecret == "" || g.RefreshToken == "" {
		return nil, fmt.Errorf("gmail OAuth credentials not configured")
	}
	if cfg.Mail.Receiver == "" {
		return nil, fmt.Errorf("mail receiver not configured")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: g.RefreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	log.Info("Gmail API mailer initialized")
	return &GmailAdapter{svc: svc, sender: cfg.Mail.User, now: time.Now}, nil
}

func (a *GmailAdapter) Send(ctx context.Context, email service.Email) error {
	raw, err := buildMessage(email, senderDomain(a.sender), a.now())
	if err != nil {
		return err
	}

	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}
	if _, err := a.svc.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}
