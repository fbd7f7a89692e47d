package cards

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptyDeck is returned when drawing from an exhausted deck.
var ErrEmptyDeck = errors.New("deck is empty")

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// NewDeck returns the 52 rank x suit combinations, rank-major.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, r := range Ranks {
		for _, s := range Suits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Deck is a draw pile. The top of the pile is the end of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewShuffledDeck returns a full deck shuffled with rng.
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Refill(nil)
	return d
}

// NewDeckFrom builds a deck that draws cards in the given order, first card
// first. Refills still shuffle with rng.
func NewDeckFrom(rng *rand.Rand, order []Card) *Deck {
	pile := slices.Clone(order)
	slices.Reverse(pile)
	return &Deck{cards: pile, rng: rng}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top last.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Contains reports whether c is still in the deck.
func (d *Deck) Contains(c Card) bool {
	return slices.Contains(d.cards, c)
}

// Draw pops the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, nil
}

// Refill replaces the pile with a freshly shuffled deck minus every card in
// inPlay.
func (d *Deck) Refill(inPlay []Card) {
	fresh := NewDeck()
	d.rng.Shuffle(len(fresh), func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})
	d.cards = d.cards[:0]
	for _, c := range fresh {
		if !slices.Contains(inPlay, c) {
			d.cards = append(d.cards, c)
		}
	}
}

// DepthDescription describes how full a deck of size cards is.
func DepthDescription(size int) string {
	switch {
	case size >= 0 && size <= 14:
		return "ALMOST EMPTY"
	case size >= 15 && size <= 26:
		return "THIN"
	case size >= 27 && size <= 43:
		return "MEDIUM"
	case size >= 44 && size <= DeckSize:
		return "FULL"
	}
	return "N/A"
}
