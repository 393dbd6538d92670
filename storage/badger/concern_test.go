package badger

import (
	"context"
	"testing"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcernRepository_PutAndGet(t *testing.T) {
	concernRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	concern := &core.Concern{
		Slug:       "noise-sensitivity",
		Title:      "Sensitivity to background noise",
		Category:   "sensory",
		TraitTypes: []string{"ADHD", "autism"},
		Situations: map[core.Domain][]string{
			core.DomainWorkplace: {"open-plan office", "meeting"},
		},
	}

	added, err := concernRepo.PutConcerns(ctx, concern)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, core.IDFromSlug("noise-sensitivity"), added[0].Id)
	assert.False(t, added[0].InsertedAt.IsZero())

	got, err := concernRepo.GetConcern(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Sensitivity to background noise", got.Title)
	assert.Equal(t, []string{"ADHD", "autism"}, got.TraitTypes)
	assert.Equal(t, []string{"open-plan office", "meeting"}, got.Situations[core.DomainWorkplace])
}

func TestConcernRepository_GetMissing(t *testing.T) {
	concernRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	_, err = concernRepo.GetConcern(ctx, core.IDFromSlug("missing"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConcernRepository_GetConcerns_SkipsMissing(t *testing.T) {
	concernRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	_, err = concernRepo.PutConcerns(ctx,
		&core.Concern{Slug: "time-blindness", Title: "Losing track of time"},
	)
	require.NoError(t, err)

	got, err := concernRepo.GetConcerns(ctx,
		core.IDFromSlug("time-blindness"),
		core.IDFromSlug("does-not-exist"),
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "time-blindness", got[0].Slug)
}

func TestConcernRepository_AllConcerns_SortedByID(t *testing.T) {
	concernRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	slugs := []string{"noise-sensitivity", "time-blindness", "task-initiation", "sensory-overload"}
	for _, slug := range slugs {
		_, err = concernRepo.PutConcerns(ctx, &core.Concern{Slug: slug, Title: slug})
		require.NoError(t, err)
	}

	all, err := concernRepo.AllConcerns(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(slugs))

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Id, all[i].Id, "AllConcerns must be sorted by ID ascending")
	}
}

func TestConcernRepository_Delete(t *testing.T) {
	concernRepo, _, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	added, err := concernRepo.PutConcerns(ctx, &core.Concern{Slug: "task-initiation", Title: "Difficulty starting tasks"})
	require.NoError(t, err)

	require.NoError(t, concernRepo.DeleteConcerns(ctx, added[0].Id))

	_, err = concernRepo.GetConcern(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = concernRepo.DeleteConcerns(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
