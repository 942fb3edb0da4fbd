// Package game implements the Twenty-One round engine.
//
// The main type is Engine, which owns a deck, a Player and a Dealer and drives
// them through nested states:
//
//   - Match: the balance starts at the stake and rounds repeat until the
//     player is broke or rich, then the agent is offered another match.
//   - Round: clear hands (reshuffling if the deck is low), deal two cards each
//     with the dealer's second card face down, run the player's turn, reveal
//     and run the dealer's turn, then resolve.
//   - Turn: the agent chooses Hit or Stay until it stays or busts; the dealer
//     draws until reaching the stand total.
//
// # Basic Usage
//
//	e := game.NewEngine(config.DefaultRules(), agent, logger)
//	results, err := e.Run()
//
// # Deterministic Testing
//
// Inject the shuffle source or a stacked deck:
//
//	e := game.NewEngine(rules, agent, logger, game.WithRNG(randutil.New(42)))
//	e := game.NewEngine(rules, agent, logger, game.WithDeck(deck.NewStacked(rng, cards...)))
//
// # Events
//
// The engine publishes events on an EventBus as the round progresses;
// displays subscribe and render them with EventFormatter. Events never carry
// the rank or suit of a face-down card.
package game
