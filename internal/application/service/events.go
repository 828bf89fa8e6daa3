package service

import (
	"context"
)

type ViewEventPublisher interface {
	PublishExperienceViewed(ctx context.Context, slug string) error
}
