package mail

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func NewMailer(ctx context.Context, cfg config.Config, log logger.Logger) (service.Mailer, error) {
	switch cfg.Mail.Driver {
	case config.MailDriverSMTP, "":
		return NewSMTPAdapter(cfg, log)
	case config.MailDriverGmail:
		return NewGmailAdapter(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}
}
