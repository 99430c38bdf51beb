package game

// Outcome is how a settled round ended. It is computed exactly once at
// settlement and never changes afterwards.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBlackjack
	OutcomePlayerWin
	OutcomeDealerWin
	OutcomePush
	OutcomePlayerBust
	OutcomeDealerBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerBlackjack:
		return "player_blackjack"
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeDealerWin:
		return "dealer_win"
	case OutcomePush:
		return "push"
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	}
	return "none"
}

// PlayerWon reports whether the outcome pays the player.
func (o Outcome) PlayerWon() bool {
	switch o {
	case OutcomePlayerBlackjack, OutcomePlayerWin, OutcomeDealerBust:
		return true
	}
	return false
}

// Payout returns the total handed back for a bet: stake plus winnings on
// a win, the stake alone on a push, nothing on a loss. pays is the
// blackjack profit multiplier, 1.5 at a 3:2 table.
func (o Outcome) Payout(bet int, pays float64) int {
	switch o {
	case OutcomePlayerBlackjack:
		return bet + int(float64(bet)*pays)
	case OutcomePlayerWin, OutcomeDealerBust:
		return bet * 2
	case OutcomePush:
		return bet
	}
	return 0
}
