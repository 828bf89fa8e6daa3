package service

import (
	"context"
)

type Email struct {
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Mailer makes one synchronous delivery attempt and returns its failure.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
