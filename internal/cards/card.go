// Package cards implements a standard 52-card deck and the blackjack point
// arithmetic built on it.
package cards

import "fmt"

// Suit of a card.
type Suit int

const (
	Diamonds Suit = iota
	Hearts
	Clubs
	Spades
)

// Suits lists every suit in deck order.
var Suits = []Suit{Diamonds, Hearts, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank of a card, ordered 2..10, J, Q, K, A.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Label returns the short rank label ("2".."10", "J", "Q", "K", "A").
func (r Rank) Label() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r)+2)
	}
	return "?"
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// Label returns the rank label of the card.
func (c Card) Label() string {
	return c.Rank.Label()
}

func (c Card) String() string {
	return c.Rank.Label() + " of " + c.Suit.String()
}
