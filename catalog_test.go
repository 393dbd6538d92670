package carena

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/carena/core"
	"github.com/poiesic/carena/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("create new catalog", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_catalog")
		catalog, err := Open(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, catalog)
		defer catalog.Close()

		// Verify components are initialized
		assert.NotNil(t, catalog.ConcernRepository())
		assert.NotNil(t, catalog.CareRepository())
		assert.NotNil(t, catalog.BundleRepository())
		assert.NotNil(t, catalog.backend)
		assert.NotNil(t, catalog.logger)
	})

	t.Run("in-memory catalog", func(t *testing.T) {
		catalog, err := Open("", WithInMemory())
		require.NoError(t, err)
		require.NotNil(t, catalog)
		assert.NoError(t, catalog.Close())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a catalog at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		catalog, err := Open(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, catalog)
	})
}

func TestCatalog_FactoryMethods(t *testing.T) {
	catalog, err := Open("", WithInMemory())
	require.NoError(t, err)
	defer catalog.Close()

	t.Run("can create loader", func(t *testing.T) {
		loader, err := catalog.NewLoader()
		require.NoError(t, err)
		require.NotNil(t, loader)
		loader.Release()
	})

	t.Run("can build indices and filter", func(t *testing.T) {
		indices, err := catalog.BuildIndices(context.Background())
		require.NoError(t, err)
		filter, err := catalog.NewFilter(indices)
		require.NoError(t, err)
		require.NotNil(t, filter)
	})

	t.Run("can create assembler", func(t *testing.T) {
		assembler, err := catalog.NewAssembler()
		require.NoError(t, err)
		require.NotNil(t, assembler)
	})

	t.Run("can create ranker", func(t *testing.T) {
		ranker, err := catalog.NewRanker()
		require.NoError(t, err)
		require.NotNil(t, ranker)
	})
}

// TestCatalog_Pipeline walks the whole path: load a catalog, build indices,
// filter by query, assemble the view, rank one concern's options.
func TestCatalog_Pipeline(t *testing.T) {
	catalog, err := Open("", WithInMemory())
	require.NoError(t, err)
	defer catalog.Close()

	ctx := context.Background()

	loader, err := catalog.NewLoader()
	require.NoError(t, err)
	defer loader.Release()

	lead := 5
	stats, err := loader.Load(ctx, &ingestion.Catalog{
		Concerns: []ingestion.ConcernRecord{
			{
				Id:         "noise-sensitivity",
				Title:      "Sensitivity to background noise",
				TraitTypes: []string{"ADHD", "autism"},
				Situations: map[string][]string{
					"workplace": {"open-plan office", "meeting"},
				},
			},
			{
				Id:         "time-blindness",
				Title:      "Losing track of time",
				TraitTypes: []string{"ADHD"},
				Situations: map[string][]string{
					"workplace": {"deadline"},
				},
			},
		},
		Cares: []ingestion.CareRecord{
			{
				Id:      "headphones",
				Title:   "Noise-cancelling headphones",
				Bullets: []string{"Blocks ambient noise"},
				Signals: ingestion.SignalsRecord{
					Cost: "low", Difficulty: "low",
					LegalBasis: "mandatory", EffectType: "immediate",
					LeadTimeDays: &lead,
				},
			},
			{
				Id:    "quiet-room",
				Title: "Access to a quiet room",
				Signals: ingestion.SignalsRecord{
					Cost: "medium", Difficulty: "medium",
					LegalBasis: "reasonable-effort", EffectType: "sustained",
				},
			},
		},
		Variants: []ingestion.VariantRecord{
			{
				Id: "headphones-workplace", CareId: "headphones",
				Domain: "workplace",
				Detail: []string{"Agree on wearing etiquette with the team."},
			},
		},
		Bundles: []ingestion.BundleRecord{
			{
				ConcernId: "noise-sensitivity",
				Entries: []ingestion.BundleEntryRecord{
					{CareId: "headphones", VariantIds: []string{"headphones-workplace"}},
					{CareId: "quiet-room"},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Concerns)

	indices, err := catalog.BuildIndices(ctx)
	require.NoError(t, err)

	filter, err := catalog.NewFilter(indices)
	require.NoError(t, err)

	concerns, err := filter.Apply(ctx, &core.Query{
		Traits:     []string{"autism"},
		Domain:     core.DomainWorkplace,
		Situations: []string{"meeting"},
	})
	require.NoError(t, err)
	require.Len(t, concerns, 1)
	assert.Equal(t, "noise-sensitivity", concerns[0].Slug)

	assembler, err := catalog.NewAssembler()
	require.NoError(t, err)

	items, err := assembler.Assemble(ctx, concerns, core.DomainWorkplace)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Cards, 2)

	ranker, err := catalog.NewRanker()
	require.NoError(t, err)

	results, err := ranker.Rank(ctx, items[0].Options(), nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Noise-cancelling headphones", results[0].Title)
	assert.Greater(t, results[0].Score, results[1].Score)
}
