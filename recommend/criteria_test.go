package recommend

import (
	"testing"

	"github.com/poiesic/carena/core"
	"github.com/stretchr/testify/assert"
)

func TestLevelScore(t *testing.T) {
	assert.Equal(t, 1.0, levelScore(core.LevelLow))
	assert.Equal(t, 0.5, levelScore(core.LevelMedium))
	assert.Equal(t, 0.0, levelScore(core.LevelHigh))
	assert.Equal(t, neutralScore, levelScore(""))
	assert.Equal(t, neutralScore, levelScore("severe"))
}

func TestEaseScoreInvertsPolarity(t *testing.T) {
	assert.Equal(t, 1.0, easeScore(core.LevelHigh))
	assert.Equal(t, 0.0, easeScore(core.LevelLow))
	assert.Equal(t, neutralScore, easeScore(""))
}

func TestEffectScore(t *testing.T) {
	assert.Equal(t, 0.85, effectScore(core.EffectImmediate))
	assert.Equal(t, 0.75, effectScore(core.EffectBroadImpact))
	assert.Equal(t, 0.70, effectScore(core.EffectSustained))
	assert.Equal(t, 0.55, effectScore(core.EffectLocalized))
	assert.Equal(t, neutralScore, effectScore(""))
	assert.Equal(t, 0.6, effectScore("ripple"), "unrecognized non-empty values score 0.6")
}

func TestInvScale(t *testing.T) {
	assert.Equal(t, 1.0, invScale(3, 7, 45))
	assert.Equal(t, 1.0, invScale(7, 7, 45))
	assert.Equal(t, 0.0, invScale(45, 7, 45))
	assert.Equal(t, 0.0, invScale(90, 7, 45))
	assert.InDelta(t, 0.5, invScale(26, 7, 45), 1e-9, "midpoint interpolates linearly")
}

func TestCriterionScores_MissingNumericsAreNeutral(t *testing.T) {
	scores := criterionScores(core.CareSignals{})
	for _, criterion := range Criteria {
		assert.Equal(t, neutralScore, scores[criterion], string(criterion))
	}
}

func TestReason_PhrasePriorityAndCap(t *testing.T) {
	tags := core.CareSignals{
		Cost:              core.LevelLow,
		Difficulty:        core.LevelLow,
		LegalBasis:        core.LegalMandatory,
		PsychologicalEase: core.LevelHigh,
		EffectType:        core.EffectImmediate,
		LeadTimeDays:      intPtr(3),
	}
	assert.Equal(t, "Low cost; easy to implement; solid legal footing.", reason(tags))
}

func TestReason_MissingValueAsymmetry(t *testing.T) {
	// Absent lead time never counts as "quick to obtain", but absent upkeep
	// is treated as zero and does count as low upkeep.
	got := reason(core.CareSignals{})
	assert.Equal(t, "Little ongoing upkeep.", got)

	heavy := 8.0
	got = reason(core.CareSignals{MonthlyUpkeepHours: &heavy})
	assert.Equal(t, genericReason, got)
}

func TestReason_Generic(t *testing.T) {
	heavy := 10.0
	tags := core.CareSignals{
		Cost:               core.LevelHigh,
		Difficulty:         core.LevelMedium,
		LegalBasis:         core.LegalOptional,
		EffectType:         core.EffectSustained,
		MonthlyUpkeepHours: &heavy,
	}
	assert.Equal(t, genericReason, reason(tags))
}
