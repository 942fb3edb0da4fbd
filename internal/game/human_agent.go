package game

// HumanAgent adapts user interface prompts to the Agent interface. The
// prompt functions are responsible for re-asking until input is valid.
type HumanAgent struct {
	promptDecision  func(TableView) (Decision, error)
	promptPlayAgain func(MatchSummary) (bool, error)
}

// NewHumanAgent creates a new human agent with prompt functions
func NewHumanAgent(promptDecision func(TableView) (Decision, error), promptPlayAgain func(MatchSummary) (bool, error)) *HumanAgent {
	return &HumanAgent{
		promptDecision:  promptDecision,
		promptPlayAgain: promptPlayAgain,
	}
}

// MakeDecision prompts the human for hit or stay
func (h *HumanAgent) MakeDecision(view TableView) (Decision, error) {
	if h.promptDecision == nil {
		// No user interface available, so stand on what we have
		return Stay, nil
	}
	return h.promptDecision(view)
}

// PlayAgain prompts the human whether to start a new match
func (h *HumanAgent) PlayAgain(summary MatchSummary) (bool, error) {
	if h.promptPlayAgain == nil {
		return false, nil
	}
	return h.promptPlayAgain(summary)
}
