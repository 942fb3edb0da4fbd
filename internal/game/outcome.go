package game

import "fmt"

// Outcome is how a round ended for the player
type Outcome int

const (
	PlayerBust Outcome = iota
	DealerBust
	PlayerWin
	DealerWin
	Tie
)

// Outcomes lists every outcome in priority order
var Outcomes = [...]Outcome{PlayerBust, DealerBust, PlayerWin, DealerWin, Tie}

// String returns the outcome tag
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Delta is the balance change the outcome applies to the player
func (o Outcome) Delta() int {
	switch o {
	case DealerBust, PlayerWin:
		return 1
	case PlayerBust, DealerWin:
		return -1
	default:
		return 0
	}
}

// Apply moves the player's balance by the outcome's delta
func (o Outcome) Apply(p *Player) {
	switch o.Delta() {
	case 1:
		p.IncreaseBalance()
	case -1:
		p.DecreaseBalance()
	}
}

// DetermineOutcome settles a round. Checks run in priority order: player
// bust, dealer bust, then the higher total, with equal totals tied.
func DetermineOutcome(player, dealer *Hand) (Outcome, error) {
	playerBusted, err := player.IsBusted()
	if err != nil {
		return 0, fmt.Errorf("player hand: %w", err)
	}
	if playerBusted {
		return PlayerBust, nil
	}

	dealerBusted, err := dealer.IsBusted()
	if err != nil {
		return 0, fmt.Errorf("dealer hand: %w", err)
	}
	if dealerBusted {
		return DealerBust, nil
	}

	// both totals are known once neither hand errored above
	playerTotal, _ := player.Value()
	dealerTotal, _ := dealer.Value()

	switch {
	case playerTotal > dealerTotal:
		return PlayerWin, nil
	case dealerTotal > playerTotal:
		return DealerWin, nil
	default:
		return Tie, nil
	}
}
