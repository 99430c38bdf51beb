package game

// Rules are the house rules a round is played under. Casinos disagree on
// the soft-17 dealer decision, so it is a setting rather than a constant.
type Rules struct {
	// DealerHitsSoft17 makes the dealer hit a 17 that counts an ace as 11.
	// A hard 17 or anything higher always stands.
	DealerHitsSoft17 bool
	// BlackjackPays is the profit multiplier for a natural, 1.5 for the
	// usual 3:2 table.
	BlackjackPays float64
}

// DefaultRules returns the rules used when nothing is configured:
// dealer hits soft 17, blackjack pays 3:2.
func DefaultRules() Rules {
	return Rules{
		DealerHitsSoft17: true,
		BlackjackPays:    1.5,
	}
}
