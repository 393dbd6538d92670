package index

import (
	"context"
	"testing"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConcerns() []*core.Concern {
	return []*core.Concern{
		{
			Id:         core.IDFromSlug("noise-sensitivity"),
			Slug:       "noise-sensitivity",
			Title:      "Sensitivity to background noise",
			TraitTypes: []string{"ADHD", "autism"},
			Situations: map[core.Domain][]string{
				core.DomainWorkplace: {"open-plan office", "meeting"},
				core.DomainEducation: {"lecture hall"},
			},
		},
		{
			Id:         core.IDFromSlug("time-blindness"),
			Slug:       "time-blindness",
			Title:      "Losing track of time",
			TraitTypes: []string{"ADHD"},
			Situations: map[core.Domain][]string{
				core.DomainWorkplace: {"meeting", "deadline"},
			},
		},
		{
			Id:    core.IDFromSlug("bare-concern"),
			Slug:  "bare-concern",
			Title: "A concern with no trait or situation data",
		},
	}
}

func TestBuildFromConcerns_Traits(t *testing.T) {
	idx := BuildFromConcerns(testConcerns())

	adhd := idx.Traits["ADHD"]
	require.NotNil(t, adhd)
	assert.True(t, adhd.Contains(core.IDFromSlug("noise-sensitivity")))
	assert.True(t, adhd.Contains(core.IDFromSlug("time-blindness")))
	assert.Len(t, adhd, 2)

	autism := idx.Traits["autism"]
	require.NotNil(t, autism)
	assert.Len(t, autism, 1)
	assert.True(t, autism.Contains(core.IDFromSlug("noise-sensitivity")))
}

func TestBuildFromConcerns_Domains(t *testing.T) {
	idx := BuildFromConcerns(testConcerns())

	workplace := idx.Domains[core.DomainWorkplace]
	require.NotNil(t, workplace)
	assert.Len(t, workplace, 2)

	education := idx.Domains[core.DomainEducation]
	require.NotNil(t, education)
	assert.Len(t, education, 1)
	assert.True(t, education.Contains(core.IDFromSlug("noise-sensitivity")))

	assert.Nil(t, idx.Domains[core.DomainSupportService])
}

func TestBuildFromConcerns_Situations(t *testing.T) {
	idx := BuildFromConcerns(testConcerns())

	meeting := idx.Situations[SituationKey(core.DomainWorkplace, "meeting")]
	require.NotNil(t, meeting)
	assert.Len(t, meeting, 2)

	lecture := idx.Situations[SituationKey(core.DomainEducation, "lecture hall")]
	require.NotNil(t, lecture)
	assert.Len(t, lecture, 1)

	// Situation keys are scoped to their domain.
	assert.Nil(t, idx.Situations[SituationKey(core.DomainEducation, "meeting")])
}

func TestBuildFromConcerns_EmptyDataContributesNothing(t *testing.T) {
	idx := BuildFromConcerns(testConcerns())

	bare := core.IDFromSlug("bare-concern")
	assert.True(t, idx.All.Contains(bare))
	for trait, set := range idx.Traits {
		assert.False(t, set.Contains(bare), "bare concern indexed under trait %q", trait)
	}
	for domain, set := range idx.Domains {
		assert.False(t, set.Contains(bare), "bare concern indexed under domain %q", domain)
	}
}

func TestBuildFromConcerns_Empty(t *testing.T) {
	idx := BuildFromConcerns(nil)
	assert.Empty(t, idx.All)
	assert.Empty(t, idx.Traits)
	assert.Empty(t, idx.Domains)
	assert.Empty(t, idx.Situations)
}

func TestBuild_FromRepository(t *testing.T) {
	concernRepo, _, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer func() {
		concernRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()
	for _, concern := range testConcerns() {
		_, err = concernRepo.PutConcerns(ctx, concern)
		require.NoError(t, err)
	}

	idx, err := Build(ctx, concernRepo)
	require.NoError(t, err)
	assert.Len(t, idx.All, 3)
	assert.Len(t, idx.Traits["ADHD"], 2)
}

func TestIDSet_Sorted(t *testing.T) {
	s := NewIDSet(30, 10, 20)
	assert.Equal(t, []core.ID{10, 20, 30}, s.Sorted())
}

func TestIDSet_Intersect(t *testing.T) {
	a := NewIDSet(1, 2, 3, 4)
	b := NewIDSet(3, 4, 5)

	got := a.Intersect(b)
	assert.Equal(t, []core.ID{3, 4}, got.Sorted())

	assert.Empty(t, a.Intersect(NewIDSet()))
}
