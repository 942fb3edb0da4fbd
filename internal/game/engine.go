package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
)

// Engine drives the match, round and turn state machine. It owns the deck,
// the player and the dealer; everything else only reads them.
type Engine struct {
	rules    config.Rules
	agent    Agent
	logger   *log.Logger
	eventBus EventBus
	newID    func() string

	deck   *deck.Deck
	player *Player
	dealer *Dealer

	recoverDeck bool
	// set by RecoverDeck so the next round reports the reset it already did
	pendingReshuffle bool
	leftAtRecovery   int
	matchID          string
	match            int
	round            int
}

// RoundResult contains the results of a completed round
type RoundResult struct {
	Round       int
	Reshuffled  bool
	Outcome     Outcome
	Balance     int
	PlayerCards []deck.Card
	DealerCards []deck.Card
	PlayerTotal int
	DealerTotal int
}

// MatchResult contains the results of a completed match
type MatchResult struct {
	MatchID      string
	Match        int
	Rounds       []*RoundResult
	FinalBalance int
	Rich         bool
	Broke        bool
}

// Summary condenses the match for the play-again prompt
func (m *MatchResult) Summary() MatchSummary {
	return MatchSummary{
		MatchID:      m.MatchID,
		Match:        m.Match,
		Rounds:       len(m.Rounds),
		FinalBalance: m.FinalBalance,
		Rich:         m.Rich,
		Broke:        m.Broke,
	}
}

// GetEventBus returns the event bus for subscribing to game events
func (e *Engine) GetEventBus() EventBus {
	return e.eventBus
}

// Player returns the player for read-only display
func (e *Engine) Player() *Player {
	return e.player
}

// Dealer returns the dealer for read-only display
func (e *Engine) Dealer() *Dealer {
	return e.dealer
}

// Rules returns the rules the engine was built with
func (e *Engine) Rules() config.Rules {
	return e.rules
}

// DeckRemaining returns the number of undealt cards
func (e *Engine) DeckRemaining() int {
	return e.deck.Remaining()
}

// RecoverDeck resets the deck after a mid-round exhaustion so play can
// continue with the next round
func (e *Engine) RecoverDeck() {
	e.leftAtRecovery = e.deck.Remaining()
	e.pendingReshuffle = true
	e.deck.Reset()
}

// Run plays matches until the agent declines another. An agent returning
// ErrQuit ends play without error.
func (e *Engine) Run() ([]*MatchResult, error) {
	var results []*MatchResult

	for {
		result, err := e.PlayMatch()
		if err != nil {
			if errors.Is(err, ErrQuit) {
				e.logger.Info("Player quit during match", "match", e.match)
				return results, nil
			}
			return results, err
		}
		results = append(results, result)

		again, err := e.agent.PlayAgain(result.Summary())
		if err != nil {
			if errors.Is(err, ErrQuit) {
				return results, nil
			}
			return results, fmt.Errorf("play again: %w", err)
		}
		if !again {
			e.logger.Info("Player declined another match", "matches", len(results))
			return results, nil
		}
	}
}

// PlayMatch resets the balance to the starting stake and plays rounds until
// the player is broke or rich
func (e *Engine) PlayMatch() (*MatchResult, error) {
	e.match++
	e.round = 0
	e.matchID = e.newID()
	e.player.ResetBalance(e.rules.StartingBalance)

	result := &MatchResult{
		MatchID: e.matchID,
		Match:   e.match,
	}

	e.logger.Info("Starting match", "matchID", e.matchID, "match", e.match, "balance", e.player.Balance())
	e.eventBus.Publish(NewMatchStartEvent(e.matchID, e.match, e.player.Balance(), e.rules.RichBalance()))

	for !e.player.IsBroke() && !e.player.IsRich() {
		round, err := e.PlayRound()
		if err != nil {
			if errors.Is(err, deck.ErrEmptyDeck) && e.recoverDeck {
				e.logger.Warn("Deck exhausted mid-round, reshuffling and replaying", "matchID", e.matchID, "round", e.round)
				e.eventBus.Publish(NewDeckExhaustedEvent(e.matchID, e.round))
				e.RecoverDeck()
				e.round--
				continue
			}
			return result, fmt.Errorf("round %d: %w", e.round, err)
		}
		result.Rounds = append(result.Rounds, round)
	}

	result.FinalBalance = e.player.Balance()
	result.Rich = e.player.IsRich()
	result.Broke = e.player.IsBroke()

	e.logger.Info("Match complete",
		"matchID", e.matchID,
		"rounds", len(result.Rounds),
		"balance", result.FinalBalance,
		"rich", result.Rich)
	e.eventBus.Publish(NewMatchEndEvent(e.matchID, len(result.Rounds), result.FinalBalance, result.Rich, result.Broke))

	return result, nil
}

// PlayRound runs one round: new round, deal, player turn, dealer turn and
// resolve. The balance is untouched if an error aborts the round.
func (e *Engine) PlayRound() (*RoundResult, error) {
	e.round++

	reshuffled, cardsLeft := e.newRound()
	e.eventBus.Publish(NewRoundStartEvent(e.matchID, e.round, reshuffled, cardsLeft, e.deck.Remaining(), e.player.Balance()))

	if err := e.deal(); err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}
	if err := e.playerTurn(); err != nil {
		return nil, fmt.Errorf("player turn: %w", err)
	}
	if err := e.dealerTurn(); err != nil {
		return nil, fmt.Errorf("dealer turn: %w", err)
	}

	result, err := e.resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Reshuffled = reshuffled
	return result, nil
}

// newRound clears both hands and resets the deck if it is running low. The
// deck is only checked here, never before individual hits. It returns
// whether the round starts on a fresh deck and how many cards were left
// before any reset.
func (e *Engine) newRound() (bool, int) {
	e.player.Hand.Reset()
	e.dealer.Hand.Reset()

	if e.pendingReshuffle {
		e.pendingReshuffle = false
		return true, e.leftAtRecovery
	}

	left := e.deck.Remaining()
	threshold := e.rules.ReshuffleThreshold()
	if !e.deck.NeedsReshuffle(threshold) {
		return false, left
	}

	e.logger.Debug("Reshuffling deck", "remaining", left, "threshold", threshold)
	e.deck.Reset()
	return true, left
}

// dealTo moves the top card of the deck into hand
func (e *Engine) dealTo(hand *Hand) (deck.Card, error) {
	card, err := e.deck.DealOne()
	if err != nil {
		return deck.Card{}, err
	}
	hand.Add(card)
	return card, nil
}

// deal hands out two cards each, player first, alternating, then turns the
// dealer's second card face down
func (e *Engine) deal() error {
	for range 2 {
		if _, err := e.dealTo(&e.player.Hand); err != nil {
			return err
		}
		if _, err := e.dealTo(&e.dealer.Hand); err != nil {
			return err
		}
	}
	e.dealer.HideCard()

	e.logger.Debug("Dealt opening hands",
		"player", e.player.Hand.JoinCards(),
		"dealer", e.dealer.Hand.JoinCards())
	e.eventBus.Publish(NewDealEvent(&e.player.Hand, &e.dealer.Hand))
	return nil
}

// playerTurn asks the agent to hit or stay until it stays or busts
func (e *Engine) playerTurn() error {
	for {
		decision, err := e.agent.MakeDecision(e.tableView())
		if err != nil {
			return err
		}
		if !decision.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidDecision, decision)
		}

		var card deck.Card
		if decision == Hit {
			if card, err = e.dealTo(&e.player.Hand); err != nil {
				return err
			}
		}

		total, err := e.player.Hand.Total()
		if err != nil {
			return err
		}
		busted := total > TwentyOne

		e.logger.Debug("Player action",
			"player", e.player.Name,
			"decision", decision,
			"hand", e.player.Hand.JoinCards(),
			"total", total)
		e.eventBus.Publish(NewPlayerActionEvent(e.player.Name, decision, card, total, busted))

		if busted || decision == Stay {
			return nil
		}
	}
}

// dealerTurn reveals the hole card and, unless the player has already
// busted, draws until the dealer reaches the stand total
func (e *Engine) dealerTurn() error {
	holeCard, _ := e.dealer.Hand.HoleCard()
	e.dealer.RevealCard()
	holeCard.Reveal()

	total, err := e.dealer.Hand.Total()
	if err != nil {
		return err
	}
	e.eventBus.Publish(NewDealerRevealEvent(holeCard, e.dealer.Hand.Cards(), total))

	playerBusted, err := e.player.Hand.IsBusted()
	if err != nil {
		return err
	}
	if playerBusted {
		return nil
	}

	for {
		total, err := e.dealer.Hand.Total()
		if err != nil {
			return err
		}

		if total >= e.rules.DealerStand {
			e.logger.Debug("Dealer stands", "total", total)
			e.eventBus.Publish(NewDealerActionEvent(Stay, deck.Card{}, total))
			return nil
		}

		card, err := e.dealTo(&e.dealer.Hand)
		if err != nil {
			return err
		}

		after, _ := e.dealer.Hand.Value()
		e.logger.Debug("Dealer hits", "card", card, "total", after)
		e.eventBus.Publish(NewDealerActionEvent(Hit, card, after))
	}
}

// resolve settles the round and applies the balance change
func (e *Engine) resolve() (*RoundResult, error) {
	outcome, err := DetermineOutcome(&e.player.Hand, &e.dealer.Hand)
	if err != nil {
		return nil, err
	}
	outcome.Apply(e.player)

	playerTotal, _ := e.player.Hand.Value()
	dealerTotal, _ := e.dealer.Hand.Value()

	result := &RoundResult{
		Round:       e.round,
		Outcome:     outcome,
		Balance:     e.player.Balance(),
		PlayerCards: e.player.Hand.Cards(),
		DealerCards: e.dealer.Hand.Cards(),
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
	}

	e.logger.Info("Round complete",
		"matchID", e.matchID,
		"round", e.round,
		"outcome", outcome,
		"balance", result.Balance)
	if e.logger.GetLevel() <= log.DebugLevel {
		e.logger.Debug("Round snapshot", "result", litter.Sdump(result))
	}

	e.eventBus.Publish(NewRoundEndEvent(e.matchID, result))
	return result, nil
}

// tableView builds what the player is allowed to see
func (e *Engine) tableView() TableView {
	total, _ := e.player.Hand.Value()

	var upCards []deck.Card
	for _, card := range e.dealer.Hand.Cards() {
		if !card.IsHidden() {
			upCards = append(upCards, card)
		}
	}

	return TableView{
		MatchID:        e.matchID,
		Round:          e.round,
		PlayerCards:    e.player.Hand.Cards(),
		PlayerTotal:    total,
		DealerUpCards:  upCards,
		Balance:        e.player.Balance(),
		CardsRemaining: e.deck.Remaining(),
	}
}
