package blackjack

import (
	"fmt"
	"strings"

	"gamelounge/internal/bank"
	"gamelounge/internal/cards"
	"gamelounge/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

const cardInnerWidth = 7

// renderCard draws a face-up card as a bordered box.
func renderCard(s ui.Styles, c cards.Card) string {
	color := ui.BlackSuit
	if c.Suit == cards.Hearts || c.Suit == cards.Diamonds {
		color = ui.RedSuit
	}
	label := c.Label()
	body := strings.Join([]string{
		label,
		"",
		lipgloss.PlaceHorizontal(cardInnerWidth, lipgloss.Center, c.Suit.Symbol()),
		"",
		lipgloss.PlaceHorizontal(cardInnerWidth, lipgloss.Right, label),
	}, "\n")
	return s.Card.Foreground(color).Render(body)
}

// renderBack draws a face-down card.
func renderBack(s ui.Styles) string {
	body := strings.Join([]string{
		"+ + + +",
		" + + + ",
		"+ + + +",
		" + + + ",
		"+ + + +",
	}, "\n")
	return s.CardBack.Render(body)
}

// renderHand lays a hand out left to right. hideFirst turns the first card
// face down.
func renderHand(s ui.Styles, hand []cards.Card, hideFirst bool) string {
	if len(hand) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(hand))
	for i, c := range hand {
		if i == 0 && hideFirst {
			blocks = append(blocks, renderBack(s))
			continue
		}
		blocks = append(blocks, renderCard(s, c))
	}
	return ui.SideBySide(1, blocks...)
}

// screen renders the whole table. reveal shows the dealer's hole card and
// total.
func screen(s ui.Styles, width int, t *Table, m bank.Money, reveal bool) string {
	var b strings.Builder

	b.WriteString(s.Banner(width, "welcome to black jack!",
		"hit or stay to beat the dealer without going over 21."))
	b.WriteString("\n\n")

	dealerValue := "??"
	if reveal {
		dealerValue = fmt.Sprintf("%d", t.DealerValue())
	}
	b.WriteString(ui.Center("DEALER: "+dealerValue, width) + "\n")
	b.WriteString(ui.Center(renderHand(s, t.Dealer, !reveal), width) + "\n\n")

	b.WriteString(ui.Center(fmt.Sprintf("Bet amount: %d", m.Bet), width) + "\n")
	desc, size := t.DeckDepth()
	deckInfo := fmt.Sprintf("Deck size: %s (%d)", desc, size)
	count := fmt.Sprintf("Hi-Lo value: %d", t.RunningCount())
	b.WriteString(spread(deckInfo, count, width) + "\n")
	b.WriteString(ui.Center(fmt.Sprintf("Player cash: %d", m.Cash), width) + "\n\n")

	b.WriteString(ui.Center(fmt.Sprintf("PLAYER: %d", t.PlayerValue()), width) + "\n")
	b.WriteString(ui.Center(renderHand(s, t.Player, false), width) + "\n")

	return b.String()
}

// endScreen is shown after cashing out.
func endScreen(s ui.Styles, width int, m bank.Money) string {
	var b strings.Builder
	b.WriteString(s.Banner(width, "welcome to black jack!",
		"hit or stay to beat the dealer without going over 21."))
	b.WriteString("\n\n")
	b.WriteString(ui.Center(ui.SideBySide(0, renderBack(s), renderBack(s), renderBack(s)), width))
	b.WriteString("\n\n")
	b.WriteString(ui.Center(fmt.Sprintf("Player cash: %d", m.Cash), width) + "\n\n")

	farewell := "Don't spend it all in one place!"
	if m.Cash <= 0 {
		farewell = "OUT OF FUNDS"
	}
	b.WriteString(ui.Center(farewell, width) + "\n")
	b.WriteString(ui.Center("Thanks for playing!", width) + "\n\n")
	return b.String()
}

// spread puts left at the start and right at the end of a width-wide line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
