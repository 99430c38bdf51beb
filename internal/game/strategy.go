package game

import "github.com/blabel3/praeses-blackjack/internal/cards"

// Suggest returns the basic-strategy move for a hand against the
// dealer's upcard, without counting cards. It backs the CLI hint and the
// autoplay mode.
func Suggest(held []cards.Card, upcard cards.Card) Action {
	hand := Hand{cards: held}
	total, soft := hand.Value()

	// With an ace counting as 11, drawing can never bust the hand
	// outright, so keep hitting until at least 18.
	if soft {
		if total >= 18 {
			return ActionStand
		}
		return ActionHit
	}

	// A strong upcard forces playing to 17. A weak one (4-6) is likely
	// to bust the dealer, so stop as soon as we could bust ourselves.
	var stopAt int
	switch upcard.Rank {
	case cards.Four, cards.Five, cards.Six:
		stopAt = 12
	case cards.Two, cards.Three:
		stopAt = 13
	default:
		stopAt = 17
	}

	if total >= stopAt {
		return ActionStand
	}
	return ActionHit
}
