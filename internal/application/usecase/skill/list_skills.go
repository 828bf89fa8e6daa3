package skill

import (
	"context"

	"github.com/khoahotran/portfolio/internal/domain/skill"
)

type ListSkillsUseCase struct {
	skillRepo skill.Repository
}

func NewListSkillsUseCase(repo skill.Repository) *ListSkillsUseCase {
	return &ListSkillsUseCase{skillRepo: repo}
}

type ListSkillsOutput struct {
	Skills []skill.Skill
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context) (*ListSkillsOutput, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSkillsOutput{Skills: skills}, nil
}
