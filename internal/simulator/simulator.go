package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/twentyone/internal/bot"
	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/statistics"
)

// ErrTimeout is the cause reported when a simulation exceeds its timeout
var ErrTimeout = errors.New("simulation timed out")

// Config holds configuration for running simulations
type Config struct {
	Matches  int
	Workers  int
	Seed     int64
	Rules    config.Rules
	Strategy bot.Strategy
	StandOn  int
	Timeout  time.Duration // zero means no limit
	Logger   *log.Logger
	Clock    quartz.Clock

	// OnMatch is called after every completed match with the running total.
	// It may be called concurrently from several workers.
	OnMatch func(completed int)
}

// Report is the outcome of a simulation run
type Report struct {
	Stats    *statistics.Statistics
	Strategy bot.Strategy
	Seed     int64
	Workers  int
	Elapsed  time.Duration
}

// Simulator plays independent bot matches in parallel
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Workers > config.Matches && config.Matches > 0 {
		config.Workers = config.Matches
	}

	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}
}

// Run plays every match and returns the aggregated statistics. Match i is
// always played with the seed derived from (Seed, i), so results do not
// depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("invalid matches count: %d", s.config.Matches)
	}
	if err := s.config.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	start := s.clock.Now()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	if s.config.Timeout > 0 {
		timer := s.clock.AfterFunc(s.config.Timeout, func() {
			cancel(ErrTimeout)
		})
		defer timer.Stop()
	}

	s.logger.Info("Starting simulation",
		"matches", s.config.Matches,
		"workers", s.config.Workers,
		"strategy", s.config.Strategy,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)
	completed := &counter{}

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, completed)
			if err != nil {
				return err
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return context.Cause(ctx)
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		Stats:    total,
		Strategy: s.config.Strategy,
		Seed:     s.config.Seed,
		Workers:  s.config.Workers,
		Elapsed:  s.clock.Since(start),
	}

	s.logger.Info("Simulation complete",
		"matches", total.Matches,
		"rounds", total.Rounds,
		"richRate", total.RichRate(),
		"elapsed", report.Elapsed)

	return report, nil
}

// runWorker plays every match whose index is congruent to worker modulo
// the worker count
func (s *Simulator) runWorker(ctx context.Context, worker int, completed *counter) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}

	for i := worker; i < s.config.Matches; i += s.config.Workers {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}

		result, err := s.PlayMatch(i)
		if err != nil {
			return nil, err
		}
		stats.Add(result)

		if s.config.OnMatch != nil {
			s.config.OnMatch(completed.inc())
		}
	}

	return stats, nil
}

// PlayMatch plays the match with the given index and condenses the result
func (s *Simulator) PlayMatch(index int) (statistics.MatchResult, error) {
	seed := randutil.Derive(s.config.Seed, index)

	agent, err := bot.New(bot.Options{
		Strategy: s.config.Strategy,
		StandOn:  s.config.StandOn,
		Matches:  1,
		RNG:      randutil.New(randutil.Derive(seed, 1)),
		Logger:   s.quietLogger(),
	})
	if err != nil {
		return statistics.MatchResult{}, err
	}

	engine := game.NewEngine(s.config.Rules, agent, s.quietLogger(),
		game.WithRNG(randutil.New(seed)),
		game.WithPlayerName("Bot"),
		game.WithDeckRecovery(true),
		game.WithIDGenerator(func() string { return fmt.Sprintf("sim-%d", index) }),
	)

	match, err := engine.PlayMatch()
	if err != nil {
		return statistics.MatchResult{}, fmt.Errorf("match %d (seed %d): %w", index, seed, err)
	}

	return statistics.FromMatch(seed, match), nil
}

// quietLogger keeps per-round engine chatter out of simulation output
// unless debug logging is enabled
func (s *Simulator) quietLogger() *log.Logger {
	if s.logger.GetLevel() <= log.DebugLevel {
		return s.logger
	}
	quiet := s.logger.With()
	quiet.SetLevel(log.WarnLevel)
	return quiet
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, matches int, strategy bot.Strategy, seed int64, logger *log.Logger) (*Report, error) {
	rules := config.DefaultRules()
	return New(Config{
		Matches:  matches,
		Workers:  1,
		Seed:     seed,
		Rules:    rules,
		Strategy: strategy,
		StandOn:  rules.DealerStand,
		Logger:   logger,
	}).Run(ctx)
}

// counter tracks completed matches across workers
type counter struct {
	n atomic.Int64
}

func (c *counter) inc() int {
	return int(c.n.Add(1))
}
