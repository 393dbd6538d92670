package recommend

import (
	"fmt"

	"github.com/poiesic/carena/core"
)

// HardLimits are user-set thresholds. A candidate that fails any limit is
// never dropped from the results; it takes a flat score penalty instead, so
// no option is ever hidden outright.
//
// A candidate whose relevant tag is missing (or unrecognized) passes the
// corresponding check: a violation cannot be established from an absent
// value. That holds for MinLegal too.
type HardLimits struct {
	MaxCost                core.Level
	MaxDifficulty          core.Level
	MinLegal               core.LegalBasis
	MaxLeadTimeDays        *int
	MaxUpkeepHoursPerMonth *float64
}

// hardLimitPenalty is subtracted once when any hard limit is violated.
const hardLimitPenalty = 0.5

// Violation names for monitor callbacks and debug output.
const (
	violationMaxCost       = "maxCost"
	violationMaxDifficulty = "maxDifficulty"
	violationMinLegal      = "minLegal"
	violationMaxLeadTime   = "maxLeadTimeDays"
	violationMaxUpkeep     = "maxUpkeepHoursPerMonth"
)

// levelRank orders the low/medium/high ordinal. Unknown values rank -1.
func levelRank(level core.Level) int {
	switch level {
	case core.LevelLow:
		return 0
	case core.LevelMedium:
		return 1
	case core.LevelHigh:
		return 2
	}
	return -1
}

// legalRank orders the legal-basis ordinal. Unknown values rank -1.
func legalRank(basis core.LegalBasis) int {
	switch basis {
	case core.LegalOptional:
		return 0
	case core.LegalReasonableEffort:
		return 1
	case core.LegalMandatory:
		return 2
	}
	return -1
}

// validateLimits rejects limits carrying values outside the ordinal scales.
func validateLimits(limits *HardLimits) error {
	if limits == nil {
		return nil
	}
	if limits.MaxCost != "" && levelRank(limits.MaxCost) < 0 {
		return fmt.Errorf("%w: maxCost %q", ErrInvalidHardLimit, limits.MaxCost)
	}
	if limits.MaxDifficulty != "" && levelRank(limits.MaxDifficulty) < 0 {
		return fmt.Errorf("%w: maxDifficulty %q", ErrInvalidHardLimit, limits.MaxDifficulty)
	}
	if limits.MinLegal != "" && legalRank(limits.MinLegal) < 0 {
		return fmt.Errorf("%w: minLegal %q", ErrInvalidHardLimit, limits.MinLegal)
	}
	return nil
}

// violations reports which limits the option's tags fail.
func violations(tags core.CareSignals, limits *HardLimits) []string {
	if limits == nil {
		return nil
	}

	var failed []string

	if limits.MaxCost != "" {
		if rank := levelRank(tags.Cost); rank >= 0 && rank > levelRank(limits.MaxCost) {
			failed = append(failed, violationMaxCost)
		}
	}
	if limits.MaxDifficulty != "" {
		if rank := levelRank(tags.Difficulty); rank >= 0 && rank > levelRank(limits.MaxDifficulty) {
			failed = append(failed, violationMaxDifficulty)
		}
	}
	if limits.MinLegal != "" {
		if rank := legalRank(tags.LegalBasis); rank >= 0 && rank < legalRank(limits.MinLegal) {
			failed = append(failed, violationMinLegal)
		}
	}
	if limits.MaxLeadTimeDays != nil && tags.LeadTimeDays != nil && *tags.LeadTimeDays > *limits.MaxLeadTimeDays {
		failed = append(failed, violationMaxLeadTime)
	}
	if limits.MaxUpkeepHoursPerMonth != nil && tags.MonthlyUpkeepHours != nil && *tags.MonthlyUpkeepHours > *limits.MaxUpkeepHoursPerMonth {
		failed = append(failed, violationMaxUpkeep)
	}

	return failed
}
