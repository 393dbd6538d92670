package recommend

import (
	"context"
	"testing"

	"github.com/poiesic/carena/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// threeOptions returns a strong, a weak, and a middling candidate.
func threeOptions() []Option {
	return []Option{
		{
			Id:    1,
			Label: "A",
			Title: "Noise-cancelling headphones",
			Tags: core.CareSignals{
				Cost:         core.LevelLow,
				Difficulty:   core.LevelLow,
				LegalBasis:   core.LegalMandatory,
				EffectType:   core.EffectImmediate,
				LeadTimeDays: intPtr(5),
			},
		},
		{
			Id:    2,
			Label: "B",
			Title: "Office relocation",
			Tags: core.CareSignals{
				Cost:       core.LevelHigh,
				Difficulty: core.LevelHigh,
				LegalBasis: core.LegalOptional,
				EffectType: core.EffectLocalized,
			},
		},
		{
			Id:    3,
			Label: "C",
			Title: "Flexible scheduling",
			Tags: core.CareSignals{
				Cost:       core.LevelMedium,
				Difficulty: core.LevelMedium,
				LegalBasis: core.LegalReasonableEffort,
				EffectType: core.EffectSustained,
			},
		},
	}
}

func newTestRanker(t *testing.T, opts ...RankerOption) *Ranker {
	t.Helper()
	ranker, err := NewRanker(opts...)
	require.NoError(t, err)
	return ranker
}

func TestRanker_DefaultPreferenceOrdering(t *testing.T) {
	ranker := newTestRanker(t)

	results, err := ranker.Rank(context.Background(), threeOptions(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, core.ID(1), results[0].Id, "low-cost mandatory quick win ranks first")
	assert.Equal(t, core.ID(2), results[2].Id, "high-cost optional option ranks last")
	assert.Greater(t, results[0].Score, 0.85)
	assert.InDelta(t, 0.925, results[0].Score, 1e-9)
}

func TestRanker_ScoresInUnitInterval(t *testing.T) {
	ranker := newTestRanker(t)

	results, err := ranker.Rank(context.Background(), threeOptions(), nil)
	require.NoError(t, err)
	for _, result := range results {
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
	}
}

func TestRanker_OutputLengthMatchesInput(t *testing.T) {
	ranker := newTestRanker(t)
	maxCost := core.LevelLow

	// Hard-limit violations penalize, never drop.
	results, err := ranker.Rank(context.Background(), threeOptions(), &Preference{
		HardLimits: &HardLimits{MaxCost: maxCost},
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = ranker.Rank(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRanker_HardLimitPenaltyIsExact(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	// The middling option stays above zero after the penalty, so the clamp
	// does not mask the subtraction.
	option := threeOptions()[2:]

	unconstrained, err := ranker.Rank(ctx, option, nil)
	require.NoError(t, err)

	constrained, err := ranker.Rank(ctx, option, &Preference{
		HardLimits: &HardLimits{MaxCost: core.LevelLow},
	})
	require.NoError(t, err)

	assert.InDelta(t, unconstrained[0].Score-0.5, constrained[0].Score, 1e-9)
}

func TestRanker_PenaltyAppliedOncePerOption(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	option := threeOptions()[1:2]

	one, err := ranker.Rank(ctx, option, &Preference{
		HardLimits: &HardLimits{MaxCost: core.LevelLow},
	})
	require.NoError(t, err)

	// Violating three limits at once costs the same as violating one.
	many, err := ranker.Rank(ctx, option, &Preference{
		HardLimits: &HardLimits{
			MaxCost:       core.LevelLow,
			MaxDifficulty: core.LevelLow,
			MinLegal:      core.LegalMandatory,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, one[0].Score, many[0].Score)
}

func TestRanker_ClampsAtZero(t *testing.T) {
	ranker := newTestRanker(t)

	// The weak option scores well under 0.5 unconstrained, so the penalty
	// would push it negative without the clamp.
	results, err := ranker.Rank(context.Background(), threeOptions()[1:2], &Preference{
		HardLimits: &HardLimits{MaxCost: core.LevelLow},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, results[0].Score)
}

func TestRanker_MissingTagsPassHardLimits(t *testing.T) {
	ranker := newTestRanker(t)

	untagged := []Option{{Id: 7, Label: "A", Title: "Untagged option"}}
	results, err := ranker.Rank(context.Background(), untagged, &Preference{
		HardLimits: &HardLimits{
			MaxCost:                core.LevelLow,
			MaxDifficulty:          core.LevelLow,
			MinLegal:               core.LegalMandatory,
			MaxLeadTimeDays:        intPtr(1),
			MaxUpkeepHoursPerMonth: floatPtr(0.5),
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, results[0].Score, 1e-9, "all-neutral option takes no penalty")
}

func TestRanker_Idempotence(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()
	pref := &Preference{HardLimits: &HardLimits{MaxCost: core.LevelMedium}}

	first, err := ranker.Rank(ctx, threeOptions(), pref)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ranker.Rank(ctx, threeOptions(), pref)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRanker_WeightRenormalization(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	base, err := ranker.Rank(ctx, threeOptions(), nil)
	require.NoError(t, err)

	// Doubling every weight changes nothing after renormalization.
	doubled := DefaultWeights()
	for criterion := range doubled {
		doubled[criterion] *= 2
	}
	scaled, err := ranker.Rank(ctx, threeOptions(), &Preference{Weights: doubled})
	require.NoError(t, err)

	for i := range base {
		assert.InDelta(t, base[i].Score, scaled[i].Score, 1e-9)
	}
}

func TestRanker_OverriddenWeightsAreDeterministic(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	// A partial override leaves a sum that is inexact in floating point, so
	// renormalization only stays stable if the weights are summed and divided
	// in a fixed order. Identical calls must produce bit-identical scores.
	pref := &Preference{Weights: map[Criterion]float64{CriterionCost: 0.3}}

	first, err := ranker.Rank(ctx, threeOptions(), pref)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := ranker.Rank(ctx, threeOptions(), pref)
		require.NoError(t, err)
		for j := range first {
			assert.Equal(t, first[j].Score, again[j].Score)
		}
	}
}

func TestRanker_InvalidPreferences(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	t.Run("negative weight", func(t *testing.T) {
		_, err := ranker.Rank(ctx, threeOptions(), &Preference{
			Weights: map[Criterion]float64{CriterionCost: -0.1},
		})
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("unknown criterion", func(t *testing.T) {
		_, err := ranker.Rank(ctx, threeOptions(), &Preference{
			Weights: map[Criterion]float64{"karma": 0.5},
		})
		assert.ErrorIs(t, err, ErrUnknownCriterion)
	})

	t.Run("all weights zero", func(t *testing.T) {
		zeroed := make(map[Criterion]float64, len(Criteria))
		for _, criterion := range Criteria {
			zeroed[criterion] = 0
		}
		_, err := ranker.Rank(ctx, threeOptions(), &Preference{Weights: zeroed})
		assert.ErrorIs(t, err, ErrZeroWeightSum)
	})

	t.Run("malformed hard limit", func(t *testing.T) {
		_, err := ranker.Rank(ctx, threeOptions(), &Preference{
			HardLimits: &HardLimits{MaxCost: "enormous"},
		})
		assert.ErrorIs(t, err, ErrInvalidHardLimit)
	})
}

func TestRanker_TieBreakCascade(t *testing.T) {
	ranker := newTestRanker(t)
	ctx := context.Background()

	t.Run("legal basis breaks score ties", func(t *testing.T) {
		// With the legal weight zeroed the two scores are identical; the
		// cascade still prefers the stronger legal footing.
		options := []Option{
			{Id: 1, Label: "A", Tags: core.CareSignals{LegalBasis: core.LegalOptional}},
			{Id: 2, Label: "B", Tags: core.CareSignals{LegalBasis: core.LegalReasonableEffort}},
		}
		results, err := ranker.Rank(ctx, options, &Preference{
			Weights: map[Criterion]float64{CriterionLegalBasis: 0},
		})
		require.NoError(t, err)
		require.Equal(t, results[0].Score, results[1].Score)
		assert.Equal(t, core.ID(2), results[0].Id)
	})

	t.Run("effect type breaks remaining ties", func(t *testing.T) {
		options := []Option{
			{Id: 1, Label: "A", Tags: core.CareSignals{EffectType: core.EffectLocalized}},
			{Id: 2, Label: "B", Tags: core.CareSignals{EffectType: core.EffectSustained}},
		}
		results, err := ranker.Rank(ctx, options, &Preference{
			Weights: map[Criterion]float64{CriterionEffectType: 0},
		})
		require.NoError(t, err)
		require.Equal(t, results[0].Score, results[1].Score)
		assert.Equal(t, core.ID(2), results[0].Id)
	})

	t.Run("cost breaks remaining ties", func(t *testing.T) {
		options := []Option{
			{Id: 1, Label: "A", Tags: core.CareSignals{Cost: core.LevelHigh}},
			{Id: 2, Label: "B", Tags: core.CareSignals{Cost: core.LevelMedium}},
		}
		results, err := ranker.Rank(ctx, options, &Preference{
			Weights: map[Criterion]float64{CriterionCost: 0},
		})
		require.NoError(t, err)
		require.Equal(t, results[0].Score, results[1].Score)
		assert.Equal(t, core.ID(2), results[0].Id)
	})

	t.Run("shared ids tie-break independently", func(t *testing.T) {
		// Two options may carry the same id, e.g. one care offered under two
		// labels. The cascade must compare each option's own axis scores, not
		// a per-id lookup that the second option would overwrite.
		options := []Option{
			{Id: 1, Label: "A", Tags: core.CareSignals{LegalBasis: core.LegalOptional}},
			{Id: 1, Label: "B", Tags: core.CareSignals{LegalBasis: core.LegalReasonableEffort}},
		}
		results, err := ranker.Rank(ctx, options, &Preference{
			Weights: map[Criterion]float64{CriterionLegalBasis: 0},
		})
		require.NoError(t, err)
		require.Equal(t, results[0].Score, results[1].Score)
		assert.Equal(t, "B", results[0].Label, "stronger legal footing wins despite input order")
		assert.Equal(t, "A", results[1].Label)
	})

	t.Run("full ties keep input order", func(t *testing.T) {
		options := []Option{
			{Id: 1, Label: "A"},
			{Id: 2, Label: "B"},
			{Id: 3, Label: "C"},
		}
		results, err := ranker.Rank(ctx, options, nil)
		require.NoError(t, err)
		assert.Equal(t, core.ID(1), results[0].Id)
		assert.Equal(t, core.ID(2), results[1].Id)
		assert.Equal(t, core.ID(3), results[2].Id)
	})
}

func TestRanker_Badges(t *testing.T) {
	ranker := newTestRanker(t)

	results, err := ranker.Rank(context.Background(), threeOptions()[:1], nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"cost:low",
		"difficulty:low",
		"legalBasis:mandatory",
		"effectType:immediate",
	}, results[0].Badges, "badges list present tags in display order")

	results, err = ranker.Rank(context.Background(), []Option{{Id: 9, Label: "A"}}, nil)
	require.NoError(t, err)
	assert.Empty(t, results[0].Badges)
}

func TestRanker_DebugBreakdown(t *testing.T) {
	ranker := newTestRanker(t, WithDebug())

	results, err := ranker.Rank(context.Background(), threeOptions()[1:2], &Preference{
		HardLimits: &HardLimits{MaxCost: core.LevelLow},
	})
	require.NoError(t, err)

	debug := results[0].Debug
	require.NotNil(t, debug)
	assert.Len(t, debug.Criteria, len(Criteria))
	assert.Equal(t, hardLimitPenalty, debug.Penalty)
	assert.Equal(t, []string{"maxCost"}, debug.Violations)
	assert.Negative(t, debug.Weighted+debug.Bonus-debug.Penalty, "raw sum goes negative")
	assert.Equal(t, 0.0, results[0].Score, "clamp hides the negative raw sum")
}

func TestRanker_DebugOffByDefault(t *testing.T) {
	ranker := newTestRanker(t)

	results, err := ranker.Rank(context.Background(), threeOptions(), nil)
	require.NoError(t, err)
	for _, result := range results {
		assert.Nil(t, result.Debug)
	}
}

// recordingMonitor captures ranking callbacks for assertions.
type recordingMonitor struct {
	started   int
	scored    []uint64
	violated  map[uint64][]string
	finishLen int
}

var _ RankMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(options []Option)                            { m.started = len(options) }
func (m *recordingMonitor) AfterCriterionScores(uint64, map[Criterion]float64) {}
func (m *recordingMonitor) HardLimitViolated(id uint64, violated []string) {
	if m.violated == nil {
		m.violated = make(map[uint64][]string)
	}
	m.violated[id] = violated
}
func (m *recordingMonitor) AfterScore(id uint64, _ float64) { m.scored = append(m.scored, id) }
func (m *recordingMonitor) Finish(results []*Result)        { m.finishLen = len(results) }

func TestRanker_MonitorCallbacks(t *testing.T) {
	ranker := newTestRanker(t)
	monitor := &recordingMonitor{}

	_, err := ranker.RankWithMonitor(context.Background(), threeOptions(), &Preference{
		HardLimits: &HardLimits{MaxCost: core.LevelLow},
	}, monitor)
	require.NoError(t, err)

	assert.Equal(t, 3, monitor.started)
	assert.Equal(t, []uint64{1, 2, 3}, monitor.scored)
	assert.Equal(t, 3, monitor.finishLen)
	assert.NotContains(t, monitor.violated, uint64(1))
	assert.Contains(t, monitor.violated, uint64(2))
	assert.Contains(t, monitor.violated, uint64(3))
}
