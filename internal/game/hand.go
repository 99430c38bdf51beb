package game

import (
	"strings"

	"github.com/blabel3/praeses-blackjack/internal/cards"
)

// Hand is the ordered sequence of cards held by one participant. Order
// never affects the value but is kept for display.
type Hand struct {
	cards []cards.Card
}

func (h *Hand) Add(c cards.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the hand, so snapshots cannot mutate it.
func (h *Hand) Cards() []cards.Card {
	return append([]cards.Card(nil), h.cards...)
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Value computes the best total of the hand. Every ace starts at 11 and
// is demoted to 1 one at a time while the total is over 21. soft reports
// whether an ace is still counted as 11, which drives the dealer's
// soft-17 decision.
func (h *Hand) Value() (total int, soft bool) {
	aces := 0
	for _, c := range h.cards {
		total += c.Rank.Value()
		if c.Rank == cards.Ace {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}

// IsNatural reports whether the hand is a two-card 21.
func (h *Hand) IsNatural() bool {
	if len(h.cards) != 2 {
		return false
	}
	total, _ := h.Value()
	return total == 21
}

// IsBust reports whether the best total exceeds 21.
func (h *Hand) IsBust() bool {
	total, _ := h.Value()
	return total > 21
}

// String renders the hand like "A♠, 10♦".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
