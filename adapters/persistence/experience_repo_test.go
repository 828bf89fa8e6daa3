package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/internal/domain/experience"
	"github.com/khoahotran/portfolio/pkg/apperror"
)

func TestStaticExperienceRepo_FindBySlug_EveryListedSlug(t *testing.T) {
	repo := NewStaticExperienceRepo()
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for _, e := range all {
		got, err := repo.FindBySlug(ctx, e.Slug)
		require.NoError(t, err, e.Slug)
		assert.Equal(t, e.Slug, got.Slug)
	}
}

func TestStaticExperienceRepo_SlugsUnique(t *testing.T) {
	all, err := NewStaticExperienceRepo().List(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool, len(all))
	for _, e := range all {
		assert.False(t, seen[e.Slug], "duplicate slug %q", e.Slug)
		seen[e.Slug] = true
	}
}

func TestStaticExperienceRepo_FindBySlug_Miss(t *testing.T) {
	repo := NewStaticExperienceRepo()

	for _, slug := range []string{"does-not-exist", "", "INTERNSHIP-ALTUS", "internship-altus "} {
		_, err := repo.FindBySlug(context.Background(), slug)
		require.Error(t, err, slug)
		assert.True(t, errors.Is(err, apperror.ErrNotFound), slug)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Experience not found", appErr.Message)
	}
}

func TestStaticExperienceRepo_Altus(t *testing.T) {
	got, err := NewStaticExperienceRepo().FindBySlug(context.Background(), "internship-altus")
	require.NoError(t, err)

	assert.Equal(t, "Software Developer", got.Title)
	assert.Contains(t, got.Company, "Altus Logistics")
	require.NotNil(t, got.CompanyURL)
	assert.Equal(t, "https://altusindonesia.com/", *got.CompanyURL)
	assert.Len(t, got.Responsibilities, 3)
	assert.Equal(t, []string{"SQL Server Management Studio", "JavaScript", "ASP.NET", "C#"}, got.Technologies)
}

func TestStaticExperienceRepo_ListStableOrder(t *testing.T) {
	repo := NewStaticExperienceRepo()
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Slug, second[i].Slug)
	}
	assert.Equal(t, "internship-altus", first[0].Slug)
	assert.Equal(t, "graphic-designer-freelance", first[1].Slug)
}

func TestStaticExperienceRepo_ReturnsCopies(t *testing.T) {
	repo := NewStaticExperienceRepo()
	ctx := context.Background()

	got, err := repo.FindBySlug(ctx, "internship-altus")
	require.NoError(t, err)
	got.Title = "changed"
	got.Technologies[0] = "changed"

	again, err := repo.FindBySlug(ctx, "internship-altus")
	require.NoError(t, err)
	assert.Equal(t, "Software Developer", again.Title)
	assert.Equal(t, "SQL Server Management Studio", again.Technologies[0])
}

func TestNewExperienceRepoFromRecords(t *testing.T) {
	records := []experience.Experience{
		{Slug: "a", Title: "A"},
		{Slug: "b", Title: "B"},
	}
	repo := NewExperienceRepoFromRecords(records)
	records[0].Title = "mutated"

	got, err := repo.FindBySlug(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
}
