package experience

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ListExperiencesUseCase struct {
	experienceRepo experience.Repository
	logger         logger.Logger
}

func NewListExperiencesUseCase(eRepo experience.Repository, log logger.Logger) *ListExperiencesUseCase {
	return &ListExperiencesUseCase{experienceRepo: eRepo, logger: log}
}

type ListExperiencesOutput struct {
	Experiences []experience.Summary
}

// Execute returns summaries only. Responsibilities and technologies are
// left for GetExperienceUseCase so a list view never carries them.
func (uc *ListExperiencesUseCase) Execute(ctx context.Context) (*ListExperiencesOutput, error) {
	records, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]experience.Summary, len(records))
	for i, e := range records {
		summaries[i] = e.Summary()
	}
	return &ListExperiencesOutput{Experiences: summaries}, nil
}
