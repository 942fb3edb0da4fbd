package bot

import "github.com/lox/twentyone/internal/game"

// ScriptBot replays a fixed list of decisions, then stays. It is used to
// reproduce a specific round.
type ScriptBot struct {
	matchLimit
	decisions []game.Decision
}

// NewScriptBot creates a bot that plays decisions in order
func NewScriptBot(matches int, decisions ...game.Decision) *ScriptBot {
	return &ScriptBot{
		matchLimit: matchLimit{matches: matches},
		decisions:  decisions,
	}
}

func (s *ScriptBot) MakeDecision(game.TableView) (game.Decision, error) {
	if len(s.decisions) == 0 {
		return game.Stay, nil
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

// Remaining returns the number of scripted decisions not yet played
func (s *ScriptBot) Remaining() int {
	return len(s.decisions)
}
