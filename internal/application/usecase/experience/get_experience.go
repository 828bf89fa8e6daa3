package experience

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/application/service"
	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const viewEventTimeout = 5 * time.Second

type GetExperienceUseCase struct {
	experienceRepo experience.Repository
	publisher      service.ViewEventPublisher
	logger         logger.Logger
}

// NewGetExperienceUseCase accepts a nil publisher, in which case no view
// events are emitted.
func NewGetExperienceUseCase(eRepo experience.Repository, publisher service.ViewEventPublisher, log logger.Logger) *GetExperienceUseCase {
	return &GetExperienceUseCase{experienceRepo: eRepo, publisher: publisher, logger: log}
}

type GetExperienceInput struct {
	Slug string
}

type GetExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *GetExperienceUseCase) Execute(ctx context.Context, input GetExperienceInput) (*GetExperienceOutput, error) {
	e, err := uc.experienceRepo.FindBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	// The response never waits on the broker.
	if uc.publisher != nil {
		go func(slug string) {
			pubCtx, cancel := context.WithTimeout(context.Background(), viewEventTimeout)
			defer cancel()
			if err := uc.publisher.PublishExperienceViewed(pubCtx, slug); err != nil {
				uc.logger.Warn("Failed to publish experience view event", zap.String("slug", slug), zap.Error(err))
			}
		}(e.Slug)
	}

	return &GetExperienceOutput{Experience: e}, nil
}
