package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func view(total int, upCard deck.Rank) game.TableView {
	return game.TableView{
		PlayerTotal:   total,
		DealerUpCards: []deck.Card{deck.NewCard(deck.Spades, upCard)},
	}
}

func TestDealerBot(t *testing.T) {
	b := NewDealerBot(17, 1, quietLogger())

	tests := []struct {
		total    int
		expected game.Decision
	}{
		{4, game.Hit},
		{12, game.Hit},
		{16, game.Hit},
		{17, game.Stay},
		{20, game.Stay},
		{21, game.Stay},
	}

	for _, tt := range tests {
		decision, err := b.MakeDecision(view(tt.total, deck.Ten))
		require.NoError(t, err)
		assert.Equal(t, tt.expected, decision, "total %d", tt.total)
	}
}

func TestThresholdBot(t *testing.T) {
	b := NewThresholdBot(15, 1, quietLogger())

	tests := []struct {
		name     string
		total    int
		upCard   deck.Rank
		expected game.Decision
	}{
		{"below threshold", 14, deck.Ten, game.Hit},
		{"at threshold", 15, deck.Ten, game.Stay},
		{"weak dealer stands early", 12, deck.Six, game.Stay},
		{"weak dealer still hits low", 11, deck.Two, game.Hit},
		{"ace is not weak", 13, deck.Ace, game.Hit},
		{"seven is not weak", 13, deck.Seven, game.Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := b.MakeDecision(view(tt.total, tt.upCard))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
		})
	}
}

func TestThresholdBotLowThresholdIgnoresDealer(t *testing.T) {
	b := NewThresholdBot(10, 1, quietLogger())
	decision, err := b.MakeDecision(view(11, deck.Five))
	require.NoError(t, err)
	assert.Equal(t, game.Stay, decision)
}

func TestRandBot(t *testing.T) {
	b := NewRandBot(randutil.New(7), 1, quietLogger())

	counts := map[game.Decision]int{}
	for range 200 {
		decision, err := b.MakeDecision(view(12, deck.Ten))
		require.NoError(t, err)
		require.True(t, decision.Valid())
		counts[decision]++
	}
	assert.Positive(t, counts[game.Hit])
	assert.Positive(t, counts[game.Stay])

	decision, err := b.MakeDecision(view(21, deck.Ten))
	require.NoError(t, err)
	assert.Equal(t, game.Stay, decision, "never hits on 21")
}

func TestRandBotDeterministic(t *testing.T) {
	decisions := func() []game.Decision {
		b := NewRandBot(randutil.New(99), 1, quietLogger())
		var out []game.Decision
		for range 20 {
			d, _ := b.MakeDecision(view(10, deck.Ten))
			out = append(out, d)
		}
		return out
	}
	assert.Equal(t, decisions(), decisions())
}

func TestScriptBot(t *testing.T) {
	b := NewScriptBot(1, game.Hit, game.Hit)
	assert.Equal(t, 2, b.Remaining())

	for _, want := range []game.Decision{game.Hit, game.Hit, game.Stay, game.Stay} {
		got, err := b.MakeDecision(game.TableView{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, b.Remaining())
}

func TestMatchLimit(t *testing.T) {
	b := NewDealerBot(17, 3, quietLogger())

	var answers []bool
	for range 4 {
		again, err := b.PlayAgain(game.MatchSummary{})
		require.NoError(t, err)
		answers = append(answers, again)
	}
	assert.Equal(t, []bool{true, true, false, false}, answers)
	assert.Equal(t, 4, b.Played())

	single := NewDealerBot(17, 0, quietLogger())
	again, err := single.PlayAgain(game.MatchSummary{})
	require.NoError(t, err)
	assert.False(t, again)
}

func TestNew(t *testing.T) {
	for _, strategy := range Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			agent, err := New(Options{
				Strategy: strategy,
				StandOn:  17,
				Matches:  1,
				RNG:      randutil.New(1),
				Logger:   quietLogger(),
			})
			require.NoError(t, err)
			require.NotNil(t, agent)
		})
	}

	_, err := New(Options{Strategy: "counting"})
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = New(Options{Strategy: StrategyRandom})
	assert.ErrorContains(t, err, "random source")
}

func TestBotPlaysFullMatch(t *testing.T) {
	rules := config.DefaultRules()
	b := NewThresholdBot(rules.DealerStand, 2, quietLogger())

	e := game.NewEngine(rules, b, quietLogger(), game.WithRNG(randutil.New(11)))
	results, err := e.Run()
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.True(t, r.Rich || r.Broke)
	}
	assert.Equal(t, 2, b.Played())
}
