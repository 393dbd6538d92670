package recommend

import "github.com/poiesic/carena/core"

// Criterion names one of the nine scored axes.
type Criterion string

const (
	CriterionCost              Criterion = "cost"
	CriterionDifficulty        Criterion = "difficulty"
	CriterionPsychologicalEase Criterion = "psychologicalEase"
	CriterionEffectType        Criterion = "effectType"
	CriterionLegalBasis        Criterion = "legalBasis"
	CriterionLeadTime          Criterion = "leadTime"
	CriterionUpkeep            Criterion = "upkeep"
	CriterionStakeholders      Criterion = "stakeholders"
	CriterionExpertise         Criterion = "expertise"
)

// Criteria lists the scored axes in weighting order.
var Criteria = []Criterion{
	CriterionCost,
	CriterionDifficulty,
	CriterionPsychologicalEase,
	CriterionEffectType,
	CriterionLegalBasis,
	CriterionLeadTime,
	CriterionUpkeep,
	CriterionStakeholders,
	CriterionExpertise,
}

// neutralScore is what a missing tag contributes on any axis.
const neutralScore = 0.5

// Inverse-linear scale bounds for the numeric axes.
const (
	leadTimeGoodMaxDays = 7
	leadTimeHardMaxDays = 45

	upkeepGoodMaxHours = 2
	upkeepHardMaxHours = 12

	stakeholdersGoodMax = 2
	stakeholdersHardMax = 10
)

// levelScore maps a low/medium/high ordinal to [0,1] with low best.
// Missing and unrecognized values score neutral.
func levelScore(level core.Level) float64 {
	switch level {
	case core.LevelLow:
		return 1.0
	case core.LevelMedium:
		return 0.5
	case core.LevelHigh:
		return 0.0
	}
	return neutralScore
}

// easeScore maps psychological ease to [0,1] with high best: for this axis
// high means "easy to ask for", the opposite polarity of cost/difficulty.
func easeScore(level core.Level) float64 {
	switch level {
	case core.LevelHigh:
		return 1.0
	case core.LevelMedium:
		return 0.5
	case core.LevelLow:
		return 0.0
	}
	return neutralScore
}

// legalScore maps the legal basis to [0,1].
func legalScore(basis core.LegalBasis) float64 {
	switch basis {
	case core.LegalMandatory:
		return 1.0
	case core.LegalReasonableEffort:
		return 0.6
	case core.LegalOptional:
		return 0.3
	}
	return neutralScore
}

// effectScore maps the effect type to [0,1]. Unlike the other ordinals, a
// non-empty value outside the known set scores 0.6 rather than neutral.
func effectScore(effect core.EffectType) float64 {
	switch effect {
	case core.EffectImmediate:
		return 0.85
	case core.EffectBroadImpact:
		return 0.75
	case core.EffectSustained:
		return 0.70
	case core.EffectLocalized:
		return 0.55
	case "":
		return neutralScore
	}
	return 0.6
}

// invScale maps a "lower is better" value to [0,1]: at or below goodMax
// scores 1, at or above hardMax scores 0, linear in between.
func invScale(value, goodMax, hardMax float64) float64 {
	if value <= goodMax {
		return 1.0
	}
	if value >= hardMax {
		return 0.0
	}
	return (hardMax - value) / (hardMax - goodMax)
}

// criterionScores computes the normalized per-axis scores for one option.
func criterionScores(tags core.CareSignals) map[Criterion]float64 {
	scores := map[Criterion]float64{
		CriterionCost:              levelScore(tags.Cost),
		CriterionDifficulty:        levelScore(tags.Difficulty),
		CriterionExpertise:         levelScore(tags.ExpertiseRequired),
		CriterionPsychologicalEase: easeScore(tags.PsychologicalEase),
		CriterionLegalBasis:        legalScore(tags.LegalBasis),
		CriterionEffectType:        effectScore(tags.EffectType),
		CriterionLeadTime:          neutralScore,
		CriterionUpkeep:            neutralScore,
		CriterionStakeholders:      neutralScore,
	}

	if tags.LeadTimeDays != nil {
		scores[CriterionLeadTime] = invScale(float64(*tags.LeadTimeDays), leadTimeGoodMaxDays, leadTimeHardMaxDays)
	}
	if tags.MonthlyUpkeepHours != nil {
		scores[CriterionUpkeep] = invScale(*tags.MonthlyUpkeepHours, upkeepGoodMaxHours, upkeepHardMaxHours)
	}
	if tags.StakeholderCount != nil {
		scores[CriterionStakeholders] = invScale(float64(*tags.StakeholderCount), stakeholdersGoodMax, stakeholdersHardMax)
	}

	return scores
}
