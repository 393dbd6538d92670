package recommend

import (
	"strings"

	"github.com/poiesic/carena/core"
)

// maxReasonPhrases caps how many qualifying phrases a justification carries.
const maxReasonPhrases = 3

// genericReason is emitted when no phrase qualifies.
const genericReason = "Balanced across criteria with no standout strengths."

// badges returns display labels for the present ordinal tags, in a fixed
// order: cost, difficulty, legalBasis, psychologicalEase, effectType.
func badges(tags core.CareSignals) []string {
	var out []string
	if tags.Cost != "" {
		out = append(out, "cost:"+string(tags.Cost))
	}
	if tags.Difficulty != "" {
		out = append(out, "difficulty:"+string(tags.Difficulty))
	}
	if tags.LegalBasis != "" {
		out = append(out, "legalBasis:"+string(tags.LegalBasis))
	}
	if tags.PsychologicalEase != "" {
		out = append(out, "psychologicalEase:"+string(tags.PsychologicalEase))
	}
	if tags.EffectType != "" {
		out = append(out, "effectType:"+string(tags.EffectType))
	}
	return out
}

// reason builds the human-readable justification from up to three qualifying
// phrases, tested in a fixed priority order.
//
// The two numeric checks are deliberately asymmetric: a missing lead time
// fails the "quick to obtain" check, while missing upkeep is treated as zero
// and passes the "little ongoing upkeep" check. Do not align them.
func reason(tags core.CareSignals) string {
	var phrases []string

	if tags.Cost == core.LevelLow {
		phrases = append(phrases, "low cost")
	}
	if tags.Difficulty == core.LevelLow {
		phrases = append(phrases, "easy to implement")
	}
	if tags.LegalBasis == core.LegalMandatory || tags.LegalBasis == core.LegalReasonableEffort {
		phrases = append(phrases, "solid legal footing")
	}
	if tags.PsychologicalEase == core.LevelHigh {
		phrases = append(phrases, "comfortable to request")
	}
	if tags.LeadTimeDays != nil && *tags.LeadTimeDays <= leadTimeGoodMaxDays {
		phrases = append(phrases, "quick to obtain")
	}
	upkeep := 0.0
	if tags.MonthlyUpkeepHours != nil {
		upkeep = *tags.MonthlyUpkeepHours
	}
	if upkeep <= upkeepGoodMaxHours {
		phrases = append(phrases, "little ongoing upkeep")
	}
	if tags.EffectType == core.EffectImmediate {
		phrases = append(phrases, "acts immediately")
	}

	if len(phrases) == 0 {
		return genericReason
	}
	if len(phrases) > maxReasonPhrases {
		phrases = phrases[:maxReasonPhrases]
	}

	joined := strings.Join(phrases, "; ")
	return strings.ToUpper(joined[:1]) + joined[1:] + "."
}
