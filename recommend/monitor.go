package recommend

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during ranking.
type RankMonitor interface {
	Start(options []Option)
	AfterCriterionScores(id uint64, scores map[Criterion]float64)
	HardLimitViolated(id uint64, violated []string)
	AfterScore(id uint64, score float64)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ []Option)                                       {}
func (n *noopMonitor) AfterCriterionScores(_ uint64, _ map[Criterion]float64) {}
func (n *noopMonitor) HardLimitViolated(_ uint64, _ []string)                 {}
func (n *noopMonitor) AfterScore(_ uint64, _ float64)                         {}
func (n *noopMonitor) Finish(_ []*Result)                                     {}
