package recommend

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/carena/core"
)

// Option is one rankable candidate: a care option with the signal tags that
// drive its score.
type Option struct {
	Id    core.ID
	Label string
	Title string
	Tags  core.CareSignals
}

// Preference carries the user's adjustments to the scoring model. A nil or
// zero Preference ranks with the default weights and no hard limits.
type Preference struct {
	Weights    map[Criterion]float64
	HardLimits *HardLimits
}

// Breakdown exposes the intermediate numbers behind one result's score.
type Breakdown struct {
	Criteria   map[Criterion]float64
	Weighted   float64
	Bonus      float64
	Penalty    float64
	Violations []string
}

// Result is one scored option. Results carry every input option: hard-limit
// failures are penalized, never dropped.
type Result struct {
	Id     core.ID
	Label  string
	Title  string
	Score  float64
	Badges []string
	Reason string
	Debug  *Breakdown
}

// Ranker scores and orders care options against a preference.
type Ranker struct {
	logger *slog.Logger
	debug  bool
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithDebug attaches a per-criterion Breakdown to every result.
func WithDebug() RankerOption {
	return func(r *Ranker) error {
		r.debug = true
		return nil
	}
}

// NewRanker creates a new ranker.
func NewRanker(opts ...RankerOption) (*Ranker, error) {
	r := &Ranker{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank scores every option against the preference and returns them best
// first. The output always has the same length as the input.
func (r *Ranker) Rank(ctx context.Context, options []Option, pref *Preference) ([]*Result, error) {
	return r.RankWithMonitor(ctx, options, pref, nil)
}

// RankWithMonitor scores every option against the preference with monitoring.
// The monitor receives callbacks at each stage of the ranking process.
func (r *Ranker) RankWithMonitor(ctx context.Context, options []Option, pref *Preference, monitor RankMonitor) ([]*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	var overrides map[Criterion]float64
	var limits *HardLimits
	if pref != nil {
		overrides = pref.Weights
		limits = pref.HardLimits
	}

	weights, err := resolveWeights(overrides)
	if err != nil {
		r.logger.Error("error resolving criterion weights", "err", err)
		return nil, err
	}
	if err := validateLimits(limits); err != nil {
		r.logger.Error("error validating hard limits", "err", err)
		return nil, err
	}

	monitor.Start(options)

	// Each result carries its legal/effect/cost axis scores for the
	// tie-break cascade below. Options are ranked independently even when
	// they share an Id, so the scores stay alongside the result rather
	// than in an Id-keyed lookup.
	type scored struct {
		result              *Result
		legal, effect, cost float64
	}
	ranked := make([]scored, 0, len(options))

	for _, option := range options {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		scores := criterionScores(option.Tags)
		monitor.AfterCriterionScores(uint64(option.Id), scores)

		var weighted float64
		for _, criterion := range Criteria {
			weighted += weights[criterion] * scores[criterion]
		}

		bonus := bonuses(option.Tags)

		var penalty float64
		violated := violations(option.Tags, limits)
		if len(violated) > 0 {
			penalty = hardLimitPenalty
			monitor.HardLimitViolated(uint64(option.Id), violated)
			r.logger.Debug("hard limits violated", "id", option.Id, "label", option.Label, "violated", violated)
		}

		score := clamp01(weighted + bonus - penalty)
		monitor.AfterScore(uint64(option.Id), score)

		result := &Result{
			Id:     option.Id,
			Label:  option.Label,
			Title:  option.Title,
			Score:  score,
			Badges: badges(option.Tags),
			Reason: reason(option.Tags),
		}
		if r.debug {
			result.Debug = &Breakdown{
				Criteria:   scores,
				Weighted:   weighted,
				Bonus:      bonus,
				Penalty:    penalty,
				Violations: violated,
			}
		}

		ranked = append(ranked, scored{
			result: result,
			legal:  scores[CriterionLegalBasis],
			effect: scores[CriterionEffectType],
			cost:   scores[CriterionCost],
		})
	}

	// Sort by score descending; break ties on the legal, effect, and cost
	// axes in turn. The stable sort keeps input order for full ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.result.Score != b.result.Score {
			return a.result.Score > b.result.Score
		}
		if a.legal != b.legal {
			return a.legal > b.legal
		}
		if a.effect != b.effect {
			return a.effect > b.effect
		}
		return a.cost > b.cost
	})

	results := make([]*Result, len(ranked))
	for i, entry := range ranked {
		results[i] = entry.result
	}
	monitor.Finish(results)

	return results, nil
}

// bonuses computes the additive adjustments for standout tag combinations.
func bonuses(tags core.CareSignals) float64 {
	var bonus float64
	if tags.Cost == core.LevelLow && tags.Difficulty == core.LevelLow {
		bonus += 0.03
	}
	if tags.LegalBasis == core.LegalMandatory {
		bonus += 0.02
	}
	if tags.EffectType == core.EffectImmediate && tags.LeadTimeDays != nil && *tags.LeadTimeDays <= leadTimeGoodMaxDays {
		bonus += 0.02
	}
	return bonus
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
