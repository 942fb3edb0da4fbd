package game

import (
	"time"

	"github.com/lox/twentyone/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeMatchStart    EventType = "match_start"
	EventTypeMatchEnd      EventType = "match_end"
	EventTypeRoundStart    EventType = "round_start"
	EventTypeRoundEnd      EventType = "round_end"
	EventTypeDeal          EventType = "deal"
	EventTypePlayerAction  EventType = "player_action"
	EventTypeDealerReveal  EventType = "dealer_reveal"
	EventTypeDealerAction  EventType = "dealer_action"
	EventTypeDeckExhausted EventType = "deck_exhausted"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a match
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// MatchStartEvent is published when a new match begins
type MatchStartEvent struct {
	MatchID     string
	Match       int
	Balance     int
	RichBalance int
	timestamp   time.Time
}

func (e MatchStartEvent) EventType() EventType { return EventTypeMatchStart }
func (e MatchStartEvent) Timestamp() time.Time { return e.timestamp }

// NewMatchStartEvent creates a new match start event
func NewMatchStartEvent(matchID string, match, balance, richBalance int) MatchStartEvent {
	return MatchStartEvent{
		MatchID:     matchID,
		Match:       match,
		Balance:     balance,
		RichBalance: richBalance,
		timestamp:   time.Now(),
	}
}

// MatchEndEvent is published when the balance hits either bound
type MatchEndEvent struct {
	MatchID   string
	Rounds    int
	Balance   int
	Rich      bool
	Broke     bool
	timestamp time.Time
}

func (e MatchEndEvent) EventType() EventType { return EventTypeMatchEnd }
func (e MatchEndEvent) Timestamp() time.Time { return e.timestamp }

// NewMatchEndEvent creates a new match end event
func NewMatchEndEvent(matchID string, rounds, balance int, rich, broke bool) MatchEndEvent {
	return MatchEndEvent{
		MatchID:   matchID,
		Rounds:    rounds,
		Balance:   balance,
		Rich:      rich,
		Broke:     broke,
		timestamp: time.Now(),
	}
}

// RoundStartEvent is published after hands are cleared, before the deal
type RoundStartEvent struct {
	MatchID        string
	Round          int
	Reshuffled     bool
	CardsLeft      int // before any reshuffle
	CardsRemaining int
	Balance        int
	timestamp      time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(matchID string, round int, reshuffled bool, cardsLeft, cardsRemaining, balance int) RoundStartEvent {
	return RoundStartEvent{
		MatchID:        matchID,
		Round:          round,
		Reshuffled:     reshuffled,
		CardsLeft:      cardsLeft,
		CardsRemaining: cardsRemaining,
		Balance:        balance,
		timestamp:      time.Now(),
	}
}

// DealEvent is published once the opening cards are out and the hole card
// is face down
type DealEvent struct {
	PlayerCards []deck.Card
	DealerCards []deck.Card
	PlayerTotal string
	DealerTotal string
	timestamp   time.Time
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }
func (e DealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealEvent creates a new deal event
func NewDealEvent(player, dealer *Hand) DealEvent {
	return DealEvent{
		PlayerCards: player.Cards(),
		DealerCards: maskHidden(dealer.Cards()),
		PlayerTotal: player.ValueString(),
		DealerTotal: dealer.ValueString(),
		timestamp:   time.Now(),
	}
}

// PlayerActionEvent is published after each player decision is applied
type PlayerActionEvent struct {
	Player    string
	Decision  Decision
	Card      deck.Card // the card drawn on a hit
	Total     int
	Busted    bool
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerActionEvent creates a new player action event
func NewPlayerActionEvent(player string, decision Decision, card deck.Card, total int, busted bool) PlayerActionEvent {
	return PlayerActionEvent{
		Player:    player,
		Decision:  decision,
		Card:      card,
		Total:     total,
		Busted:    busted,
		timestamp: time.Now(),
	}
}

// DealerRevealEvent is published when the hole card turns face up
type DealerRevealEvent struct {
	HoleCard  deck.Card
	Cards     []deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerRevealEvent creates a new dealer reveal event
func NewDealerRevealEvent(holeCard deck.Card, cards []deck.Card, total int) DealerRevealEvent {
	return DealerRevealEvent{
		HoleCard:  holeCard,
		Cards:     cards,
		Total:     total,
		timestamp: time.Now(),
	}
}

// DealerActionEvent is published for each dealer hit and the final stand
type DealerActionEvent struct {
	Decision  Decision
	Card      deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerActionEvent) EventType() EventType { return EventTypeDealerAction }
func (e DealerActionEvent) Timestamp() time.Time { return e.timestamp }

// NewDealerActionEvent creates a new dealer action event
func NewDealerActionEvent(decision Decision, card deck.Card, total int) DealerActionEvent {
	return DealerActionEvent{
		Decision:  decision,
		Card:      card,
		Total:     total,
		timestamp: time.Now(),
	}
}

// RoundEndEvent is published once the outcome has been applied
type RoundEndEvent struct {
	MatchID     string
	Round       int
	Outcome     Outcome
	Balance     int
	PlayerCards []deck.Card
	DealerCards []deck.Card
	PlayerTotal int
	DealerTotal int
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(matchID string, result *RoundResult) RoundEndEvent {
	return RoundEndEvent{
		MatchID:     matchID,
		Round:       result.Round,
		Outcome:     result.Outcome,
		Balance:     result.Balance,
		PlayerCards: result.PlayerCards,
		DealerCards: result.DealerCards,
		PlayerTotal: result.PlayerTotal,
		DealerTotal: result.DealerTotal,
		timestamp:   time.Now(),
	}
}

// DeckExhaustedEvent is published when the deck runs dry mid-round
type DeckExhaustedEvent struct {
	MatchID   string
	Round     int
	timestamp time.Time
}

func (e DeckExhaustedEvent) EventType() EventType { return EventTypeDeckExhausted }
func (e DeckExhaustedEvent) Timestamp() time.Time { return e.timestamp }

// NewDeckExhaustedEvent creates a new deck exhausted event
func NewDeckExhaustedEvent(matchID string, round int) DeckExhaustedEvent {
	return DeckExhaustedEvent{
		MatchID:   matchID,
		Round:     round,
		timestamp: time.Now(),
	}
}

// maskHidden replaces face-down cards with a blank hidden card so the
// event carries nothing a display could leak
func maskHidden(cards []deck.Card) []deck.Card {
	for i := range cards {
		if cards[i].IsHidden() {
			var blank deck.Card
			blank.Hide()
			cards[i] = blank
		}
	}
	return cards
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory, synchronous event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
