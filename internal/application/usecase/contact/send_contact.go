package contact

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const DefaultDispatchTimeout = 10 * time.Second

const tracerName = "github.com/khoahotran/portfolio/usecase/contact"

type MailSettings struct {
	Sender   string
	Receiver string
	Timeout  time.Duration
}

type SendContactUseCase struct {
	mailer   service.Mailer
	settings MailSettings
	logger   logger.Logger
}

func NewSendContactUseCase(mailer service.Mailer, settings MailSettings, log logger.Logger) *SendContactUseCase {
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultDispatchTimeout
	}
	return &SendContactUseCase{mailer: mailer, settings: settings, logger: log}
}

type SendContactInput struct {
	Message contact.Message
}

func (uc *SendContactUseCase) Execute(ctx context.Context, input SendContactInput) error {
	if err := input.Message.Validate(); err != nil {
		return apperror.NewMissingFields(err.Error(), err)
	}

	body, err := renderEmailBody(input.Message)
	if err != nil {
		uc.logger.Error("Failed to render contact email", err)
		return apperror.NewDispatchFailed("render contact email", err)
	}

	email := service.Email{
		From:     `"Portfolio Contact Form" <` + uc.settings.Sender + `>`,
		To:       uc.settings.Receiver,
		ReplyTo:  input.Message.Email,
		Subject:  emailSubject(input.Message),
		HTMLBody: body,
	}

	// A client hanging up must not abort a dispatch already under way;
	// only our own deadline bounds it.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.settings.Timeout)
	defer cancel()

	// Submitter details stay out of traces.
	sendCtx, span := otel.Tracer(tracerName).Start(sendCtx, "contact.dispatch")
	defer span.End()
	span.SetAttributes(attribute.Int64("mail.timeout_ms", uc.settings.Timeout.Milliseconds()))

	if err := uc.dispatch(sendCtx, email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		uc.logger.Error("Failed to send email", err,
			zap.String("reply_to", input.Message.Email),
			zap.Duration("timeout", uc.settings.Timeout),
		)
		return apperror.NewDispatchFailed("mail transport failed", err)
	}

	uc.logger.Info("Contact email sent", zap.String("reply_to", input.Message.Email))
	return nil
}

// dispatch makes the single send attempt. It returns when the mailer does or
// when ctx expires, whichever comes first, so a transport that ignores ctx
// still cannot hold the request past the deadline.
func (uc *SendContactUseCase) dispatch(ctx context.Context, email service.Email) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- uc.mailer.Send(ctx, email)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
