package game

// Player is the participant who stakes a balance against the dealer
type Player struct {
	Name string
	Hand Hand

	balance     int
	richBalance int
}

// NewPlayer creates a player holding startingBalance. The player is rich
// once the balance reaches richBalance.
func NewPlayer(name string, startingBalance, richBalance int) *Player {
	return &Player{
		Name:        name,
		balance:     startingBalance,
		richBalance: richBalance,
	}
}

// Balance returns the current balance
func (p *Player) Balance() int {
	return p.balance
}

// IncreaseBalance adds one unit to the balance
func (p *Player) IncreaseBalance() {
	p.balance++
}

// DecreaseBalance takes one unit from the balance
func (p *Player) DecreaseBalance() {
	p.balance--
}

// ResetBalance sets the balance to an absolute value, used between matches
func (p *Player) ResetBalance(balance int) {
	p.balance = balance
}

// IsBroke returns true once the balance is exhausted
func (p *Player) IsBroke() bool {
	return p.balance == 0
}

// IsRich returns true once the balance reaches the rich target
func (p *Player) IsRich() bool {
	return p.balance == p.richBalance
}

// Dealer plays the house hand. It has no balance.
type Dealer struct {
	Name string
	Hand Hand
}

// NewDealer creates a dealer
func NewDealer() *Dealer {
	return &Dealer{Name: "Dealer"}
}

// HideCard turns the dealer's latest card face down
func (d *Dealer) HideCard() {
	d.Hand.HideCard()
}

// RevealCard turns the dealer's hole card face up
func (d *Dealer) RevealCard() {
	d.Hand.RevealCard()
}
