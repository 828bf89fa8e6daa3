package education

import (
	"context"
	"fmt"

	"github.com/khoahotran/portfolio/internal/domain/education"
)

type EducationUseCase struct {
	educationRepo education.Repository
}

func NewEducationUseCase(repo education.Repository) *EducationUseCase {
	return &EducationUseCase{
		educationRepo: repo,
	}
}

type GetEducationOutput struct {
	Education *education.Education
}

func (uc *EducationUseCase) ExecuteGetEducation(ctx context.Context) (*GetEducationOutput, error) {
	e, err := uc.educationRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get education failed: %w", err)
	}
	return &GetEducationOutput{Education: e}, nil
}
