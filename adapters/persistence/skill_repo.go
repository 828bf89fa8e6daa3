package persistence

import (
	"context"
	"slices"

	"github.com/khoahotran/portfolio/internal/domain/site"
	"github.com/khoahotran/portfolio/internal/domain/skill"
)

type staticSkillRepo struct {
	skills []skill.Skill
}

func NewStaticSkillRepo() skill.Repository {
	return &staticSkillRepo{skills: skillTable}
}

func (r *staticSkillRepo) List(ctx context.Context) ([]skill.Skill, error) {
	return slices.Clone(r.skills), nil
}

// Manifest returns a copy of the site's web app manifest.
func Manifest() site.Manifest {
	m := siteManifest
	m.Icons = slices.Clone(siteManifest.Icons)
	return m
}
