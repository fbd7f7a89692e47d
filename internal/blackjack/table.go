// Package blackjack implements a single-deck game of 21 against a dealer who
// stands on 17.
package blackjack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gamelounge/internal/bank"
	"gamelounge/internal/cards"
)

// ErrInvalidBet is returned for bets that are not a positive whole number
// the player can cover.
var ErrInvalidBet = errors.New("invalid bet")

// Outcome of a finished round, from the player's side of the table.
type Outcome int

const (
	Bust Outcome = iota
	PlayerWins
	Push
	DealerWins
)

func (o Outcome) String() string {
	switch o {
	case Bust:
		return "bust"
	case PlayerWins:
		return "player_wins"
	case Push:
		return "push"
	case DealerWins:
		return "dealer_wins"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Message is the line shown to the player when the round ends.
func (o Outcome) Message() string {
	switch o {
	case Bust:
		return "you busted! "
	case PlayerWins:
		return "you win! "
	case Push:
		return "push! bets returned. "
	}
	return "dealer wins... "
}

// Rules of the table.
type Rules struct {
	DealerStand int
}

// DefaultRules returns stand-on-17.
func DefaultRules() Rules {
	return Rules{DealerStand: 17}
}

// Table holds both hands and the shoe.
type Table struct {
	Player []cards.Card
	Dealer []cards.Card

	deck  *cards.Deck
	rules Rules
}

// NewTable returns an empty table drawing from deck.
func NewTable(deck *cards.Deck, rules Rules) *Table {
	if rules.DealerStand == 0 {
		rules.DealerStand = DefaultRules().DealerStand
	}
	return &Table{deck: deck, rules: rules}
}

// Deck exposes the shoe.
func (t *Table) Deck() *cards.Deck { return t.deck }

func (t *Table) inPlay() []cards.Card {
	held := make([]cards.Card, 0, len(t.Player)+len(t.Dealer))
	held = append(held, t.Player...)
	return append(held, t.Dealer...)
}

// draw takes the top card, refilling the shoe around the cards in play when
// it runs dry.
func (t *Table) draw() (cards.Card, error) {
	if t.deck.Len() == 0 {
		t.deck.Refill(t.inPlay())
	}
	c, err := t.deck.Draw()
	if err != nil {
		return cards.Card{}, fmt.Errorf("draw: %w", err)
	}
	return c, nil
}

// Deal clears both hands and deals two cards each, alternating player then
// dealer.
func (t *Table) Deal() error {
	t.Player = nil
	t.Dealer = nil
	for i := 0; i < 2; i++ {
		c, err := t.draw()
		if err != nil {
			return err
		}
		t.Player = append(t.Player, c)

		c, err = t.draw()
		if err != nil {
			return err
		}
		t.Dealer = append(t.Dealer, c)
	}
	return nil
}

// Hit gives the player one card.
func (t *Table) Hit() error {
	c, err := t.draw()
	if err != nil {
		return err
	}
	t.Player = append(t.Player, c)
	return nil
}

// DealerPlay draws for the dealer until their hand reaches DealerStand.
// show is called before every decision so the caller can redraw.
func (t *Table) DealerPlay(show func()) error {
	for {
		if show != nil {
			show()
		}
		if cards.HandValue(t.Dealer) >= t.rules.DealerStand {
			return nil
		}
		c, err := t.draw()
		if err != nil {
			return err
		}
		t.Dealer = append(t.Dealer, c)
	}
}

// PlayerValue returns the player's hand value.
func (t *Table) PlayerValue() int { return cards.HandValue(t.Player) }

// DealerValue returns the dealer's hand value.
func (t *Table) DealerValue() int { return cards.HandValue(t.Dealer) }

// AnyoneBusted reports whether either hand is over 21.
func (t *Table) AnyoneBusted() bool {
	return t.PlayerValue() > cards.Blackjack || t.DealerValue() > cards.Blackjack
}

// Outcome scores the round as it stands.
func (t *Table) Outcome() Outcome {
	player, dealer := t.PlayerValue(), t.DealerValue()
	switch {
	case player > cards.Blackjack:
		return Bust
	case dealer > cards.Blackjack || player > dealer:
		return PlayerWins
	case player == dealer:
		return Push
	}
	return DealerWins
}

// PrepareNextRound refills an exhausted shoe before the next deal.
func (t *Table) PrepareNextRound() {
	if t.deck.Len() == 0 {
		t.deck.Refill(t.inPlay())
	}
}

// RunningCount is the Hi-Lo count of every card out of the shoe except the
// dealer's hole card.
func (t *Table) RunningCount() int {
	var hole *cards.Card
	if len(t.Dealer) > 0 {
		hole = &t.Dealer[0]
	}
	count := 0
	for _, c := range cards.NewDeck() {
		if t.deck.Contains(c) || (hole != nil && c == *hole) {
			continue
		}
		count += cards.HiLoValue(c)
	}
	return count
}

// DeckDepth describes how much of the shoe is left.
func (t *Table) DeckDepth() (string, int) {
	n := t.deck.Len()
	return cards.DepthDescription(n), n
}

// Settle pays out the bet: wins add it, losses and busts take it, a push
// leaves cash alone.
func Settle(o Outcome, m *bank.Money) {
	switch o {
	case PlayerWins:
		m.Cash += m.Bet
	case DealerWins, Bust:
		m.Cash -= m.Bet
	}
}

// ParseBet validates a bet typed by the player.
func ParseBet(input string, m bank.Money) (int, error) {
	input = strings.TrimSpace(input)
	bet, err := strconv.Atoi(input)
	if err != nil || strconv.Itoa(bet) != input {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidBet, input)
	}
	if bet <= 0 {
		return 0, fmt.Errorf("%w: bet must be positive", ErrInvalidBet)
	}
	if bet > m.Cash {
		return 0, fmt.Errorf("%w: only %d available", ErrInvalidBet, m.Cash)
	}
	return bet, nil
}

// ClampBet lowers the bet to the player's cash when it is higher.
func ClampBet(m *bank.Money) {
	if m.Bet > m.Cash {
		m.Bet = m.Cash
	}
}
