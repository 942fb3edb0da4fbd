package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/twentyone/internal/game"
)

// MatchResult is the condensed outcome of one simulated match
type MatchResult struct {
	Seed       int64                   // RNG seed for this match (for replay)
	Rounds     int                     // Rounds played before the match ended
	Rich       bool                    // Match ended at the rich balance
	Outcomes   [len(game.Outcomes)]int // Round outcomes indexed by game.Outcome
	Reshuffles int                     // Rounds that started on a fresh deck
}

// FromMatch condenses an engine match result
func FromMatch(seed int64, m *game.MatchResult) MatchResult {
	result := MatchResult{
		Seed:   seed,
		Rounds: len(m.Rounds),
		Rich:   m.Rich,
	}
	for _, round := range m.Rounds {
		result.Outcomes[round.Outcome]++
		if round.Reshuffled {
			result.Reshuffles++
		}
	}
	return result
}

// Statistics aggregates simulated matches. The rounds-per-match figures
// (mean, deviation, percentiles) describe how long matches last.
type Statistics struct {
	Matches    int
	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Rounds per match for median/percentile calculation

	RichMatches  int
	BrokeMatches int

	Rounds     int
	Outcomes   [len(game.Outcomes)]int
	Reshuffles int

	LongestMatch  int
	ShortestMatch int
}

// Add incorporates a new match result into the statistics
func (s *Statistics) Add(result MatchResult) {
	rounds := float64(result.Rounds)
	s.Matches++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)

	if result.Rich {
		s.RichMatches++
	} else {
		s.BrokeMatches++
	}

	s.Rounds += result.Rounds
	for i, n := range result.Outcomes {
		s.Outcomes[i] += n
	}
	s.Reshuffles += result.Reshuffles

	if result.Rounds > s.LongestMatch {
		s.LongestMatch = result.Rounds
	}
	if s.ShortestMatch == 0 || result.Rounds < s.ShortestMatch {
		s.ShortestMatch = result.Rounds
	}
}

// Merge folds another set of statistics into s
func (s *Statistics) Merge(other *Statistics) {
	if other.Matches == 0 {
		return
	}

	s.Matches += other.Matches
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Values = append(s.Values, other.Values...)
	s.RichMatches += other.RichMatches
	s.BrokeMatches += other.BrokeMatches
	s.Rounds += other.Rounds
	for i, n := range other.Outcomes {
		s.Outcomes[i] += n
	}
	s.Reshuffles += other.Reshuffles

	if other.LongestMatch > s.LongestMatch {
		s.LongestMatch = other.LongestMatch
	}
	if s.ShortestMatch == 0 || other.ShortestMatch < s.ShortestMatch {
		s.ShortestMatch = other.ShortestMatch
	}
}

// Mean returns the mean number of rounds per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Matches)
}

// Variance returns the sample variance of rounds per match
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of rounds per match
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median rounds per match
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the rounds per match at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// RichRate returns the fraction of matches the player ended rich
func (s *Statistics) RichRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.RichMatches) / float64(s.Matches)
}

// OutcomeRate returns the fraction of all rounds that ended with outcome
func (s *Statistics) OutcomeRate(outcome game.Outcome) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Outcomes[outcome]) / float64(s.Rounds)
}

// NetUnits returns the total balance change across all rounds
func (s *Statistics) NetUnits() int {
	net := 0
	for _, outcome := range game.Outcomes {
		net += s.Outcomes[outcome] * outcome.Delta()
	}
	return net
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid matches count: %d", s.Matches)
	}

	if len(s.Values) != s.Matches {
		return fmt.Errorf("values array length (%d) does not match matches count (%d)",
			len(s.Values), s.Matches)
	}

	if s.RichMatches+s.BrokeMatches != s.Matches {
		return fmt.Errorf("rich (%d) and broke (%d) matches do not add up to %d",
			s.RichMatches, s.BrokeMatches, s.Matches)
	}

	outcomes := 0
	for _, n := range s.Outcomes {
		outcomes += n
	}
	if outcomes != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds (%d)", outcomes, s.Rounds)
	}

	if math.Abs(s.SumRounds-float64(s.Rounds)) > 1e-6 {
		return fmt.Errorf("ledger mismatch: SumRounds=%.0f, Rounds=%d", s.SumRounds, s.Rounds)
	}

	return nil
}
