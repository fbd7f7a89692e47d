package cards

// Blackjack is the best possible hand value.
const Blackjack = 21

// PointValue returns the provisional value of a card: face value for 2-10,
// 10 for J/Q/K and 1 for an Ace.
func PointValue(c Card) int {
	switch {
	case c.Rank == Ace:
		return 1
	case c.Rank >= Jack:
		return 10
	}
	return int(c.Rank) + 2
}

// HandValue sums a hand counting each Ace as 11 when that keeps the total at
// or under 21, one Ace at a time.
func HandValue(hand []Card) int {
	points := 0
	aces := 0
	for _, c := range hand {
		points += PointValue(c)
		if c.Rank == Ace {
			aces++
		}
	}
	for aces > 0 && points+10 <= Blackjack {
		points += 10
		aces--
	}
	return points
}

// IsSoft reports whether the hand value counts an Ace as 11.
func IsSoft(hand []Card) bool {
	hard := 0
	for _, c := range hand {
		hard += PointValue(c)
	}
	return HandValue(hand) != hard
}

// Busted reports whether the hand is over 21.
func Busted(hand []Card) bool {
	return HandValue(hand) > Blackjack
}

// HiLoValue is the Hi-Lo counting weight: 2-6 +1, 7-9 0, ten-valued and
// Aces -1.
func HiLoValue(c Card) int {
	switch {
	case c.Rank <= Six:
		return 1
	case c.Rank <= Nine:
		return 0
	}
	return -1
}

// HiLoCount sums the Hi-Lo weight of seen cards.
func HiLoCount(seen []Card) int {
	count := 0
	for _, c := range seen {
		count += HiLoValue(c)
	}
	return count
}
