package persistence

import (
	"context"
	"slices"

	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

type staticExperienceRepo struct {
	records []experience.Experience
}

func NewStaticExperienceRepo() experience.Repository {
	return NewExperienceRepoFromRecords(experienceTable)
}

// NewExperienceRepoFromRecords serves the given records. Records are copied,
// later changes to the argument are not observed.
func NewExperienceRepoFromRecords(records []experience.Experience) experience.Repository {
	return &staticExperienceRepo{records: slices.Clone(records)}
}

func cloneExperience(e *experience.Experience) *experience.Experience {
	c := *e
	c.Responsibilities = slices.Clone(e.Responsibilities)
	c.Technologies = slices.Clone(e.Technologies)
	return &c
}

func (r *staticExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	out := make([]*experience.Experience, 0, len(r.records))
	for i := range r.records {
		out = append(out, cloneExperience(&r.records[i]))
	}
	return out, nil
}

func (r *staticExperienceRepo) FindBySlug(ctx context.Context, slug string) (*experience.Experience, error) {
	for i := range r.records {
		if r.records[i].Slug == slug {
			return cloneExperience(&r.records[i]), nil
		}
	}
	return nil, apperror.NewNotFound("Experience", slug)
}
