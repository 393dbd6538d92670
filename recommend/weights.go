package recommend

import (
	"fmt"
	"math"
)

// Default weights for the nine criteria. They sum to 1; overridden sets are
// renormalized back to 1 before use.
const (
	DefaultWeightCost              = 0.18
	DefaultWeightDifficulty        = 0.16
	DefaultWeightPsychologicalEase = 0.16
	DefaultWeightEffectType        = 0.20
	DefaultWeightLegalBasis        = 0.15
	DefaultWeightLeadTime          = 0.08
	DefaultWeightUpkeep            = 0.04
	DefaultWeightStakeholders      = 0.02
	DefaultWeightExpertise         = 0.01
)

// DefaultWeights returns the default criterion weights.
func DefaultWeights() map[Criterion]float64 {
	return map[Criterion]float64{
		CriterionCost:              DefaultWeightCost,
		CriterionDifficulty:        DefaultWeightDifficulty,
		CriterionPsychologicalEase: DefaultWeightPsychologicalEase,
		CriterionEffectType:        DefaultWeightEffectType,
		CriterionLegalBasis:        DefaultWeightLegalBasis,
		CriterionLeadTime:          DefaultWeightLeadTime,
		CriterionUpkeep:            DefaultWeightUpkeep,
		CriterionStakeholders:      DefaultWeightStakeholders,
		CriterionExpertise:         DefaultWeightExpertise,
	}
}

// resolveWeights merges preference overrides into the defaults, validates
// them, and renormalizes so the nine weights sum to 1.
func resolveWeights(overrides map[Criterion]float64) (map[Criterion]float64, error) {
	weights := DefaultWeights()

	for criterion, value := range overrides {
		if _, ok := weights[criterion]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return nil, fmt.Errorf("%w: %s = %v", ErrInvalidWeight, criterion, value)
		}
		weights[criterion] = value
	}

	// Sum and divide in the fixed Criteria order: float addition is not
	// associative, and map iteration order would make the normalized
	// weights vary between calls on identical input.
	var sum float64
	for _, criterion := range Criteria {
		sum += weights[criterion]
	}
	if sum <= 0 {
		return nil, ErrZeroWeightSum
	}
	for _, criterion := range Criteria {
		weights[criterion] /= sum
	}

	return weights, nil
}
