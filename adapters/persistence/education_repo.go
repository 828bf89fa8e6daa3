package persistence

import (
	"context"
	"slices"

	"github.com/khoahotran/portfolio/internal/domain/education"
)

type staticEducationRepo struct {
	record education.Education
}

func NewStaticEducationRepo() education.Repository {
	return &staticEducationRepo{record: educationRecord}
}

func (r *staticEducationRepo) Get(ctx context.Context) (*education.Education, error) {
	e := r.record
	e.Achievements = slices.Clone(r.record.Achievements)
	e.Stats = slices.Clone(r.record.Stats)
	return &e, nil
}
