package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blabel3/praeses-blackjack/internal/cards"
)

// startRound deals from a stacked deck: player, dealer, player, dealer,
// then whatever the hits consume.
func startRound(t *testing.T, rules Rules, ranks ...cards.Rank) *Round {
	t.Helper()

	stacked := make([]cards.Card, len(ranks))
	for i, r := range ranks {
		stacked[i] = card(r)
	}

	rd, err := Start(cards.From(stacked...), rules)
	require.NoError(t, err)
	return rd
}

func TestNaturalCollisionIsPush(t *testing.T) {
	// Player A,K vs dealer A,Q: both turns are skipped.
	rd := startRound(t, DefaultRules(), cards.Ace, cards.Ace, cards.King, cards.Queen)

	assert.Equal(t, PhaseDone, rd.Phase())

	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomePush, outcome)

	assert.ErrorIs(t, rd.Submit(ActionHit), ErrRoundDone)
}

func TestPlayerNaturalWins(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ace, cards.Nine, cards.King, cards.Seven)

	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomePlayerBlackjack, outcome)
}

func TestDealerNaturalWins(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ace, cards.Nine, cards.King)

	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomeDealerWin, outcome)
}

func TestHitUntilBust(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Five, cards.Nine, cards.Five, cards.King)

	require.Equal(t, PhasePlayerTurn, rd.Phase())
	require.NoError(t, rd.Submit(ActionHit))

	assert.Equal(t, PhaseDone, rd.Phase())
	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomePlayerBust, outcome)
}

func TestHitKeepsTurnWhileUnderTwentyOne(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Two, cards.Five, cards.Three, cards.Five, cards.Four)

	require.NoError(t, rd.Submit(ActionHit))
	assert.Equal(t, PhasePlayerTurn, rd.Phase())

	snap := rd.Snapshot()
	assert.Len(t, snap.Player, 3)
	assert.Equal(t, 9, snap.PlayerTotal)
}

func TestDealerTwentyOneBeatsNineteen(t *testing.T) {
	// Player 10,9 stands on 19; dealer 10,6 draws a 5 for a hard 21.
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ten, cards.Nine, cards.Six, cards.Five)

	require.NoError(t, rd.Submit(ActionStand))

	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomeDealerWin, outcome)

	snap := rd.Snapshot()
	assert.Equal(t, 21, snap.DealerTotal)
	assert.Len(t, snap.Dealer, 3)
}

func TestDealerBustsPlayerWins(t *testing.T) {
	// Dealer 10,6 draws a 10 for 26.
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ten, cards.Nine, cards.Six, cards.Ten)

	require.NoError(t, rd.Submit(ActionStand))

	outcome, ok := rd.Outcome()
	require.True(t, ok)
	assert.Equal(t, OutcomeDealerBust, outcome)
	assert.True(t, outcome.PlayerWon())
}

func TestDealerHitsSoftSeventeen(t *testing.T) {
	// Dealer 6,A is a soft 17 and must draw under the default rule.
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Six, cards.Eight, cards.Ace, cards.Two)

	require.NoError(t, rd.Submit(ActionStand))

	snap := rd.Snapshot()
	assert.Len(t, snap.Dealer, 3)
	assert.Equal(t, 19, snap.DealerTotal)

	outcome, _ := rd.Outcome()
	assert.Equal(t, OutcomeDealerWin, outcome)
}

func TestDealerStandsOnSoftSeventeenWhenRuleOff(t *testing.T) {
	rules := Rules{DealerHitsSoft17: false, BlackjackPays: 1.5}
	rd := startRound(t, rules, cards.Ten, cards.Six, cards.Eight, cards.Ace, cards.Two)

	require.NoError(t, rd.Submit(ActionStand))

	snap := rd.Snapshot()
	assert.Len(t, snap.Dealer, 2)

	// Player 18 beats the standing soft 17.
	outcome, _ := rd.Outcome()
	assert.Equal(t, OutcomePlayerWin, outcome)
}

func TestDealerStandsOnHardSeventeen(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ten, cards.Nine, cards.Seven)

	require.NoError(t, rd.Submit(ActionStand))

	snap := rd.Snapshot()
	assert.Len(t, snap.Dealer, 2)
	assert.Equal(t, 17, snap.DealerTotal)

	outcome, _ := rd.Outcome()
	assert.Equal(t, OutcomePlayerWin, outcome)
}

func TestEqualTotalsPush(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ten, cards.Nine, cards.Nine)

	require.NoError(t, rd.Submit(ActionStand))

	outcome, _ := rd.Outcome()
	assert.Equal(t, OutcomePush, outcome)
}

func TestInvalidActionLeavesStateUntouched(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Ten, cards.Nine, cards.Seven, cards.Two)
	rd.phase = PhaseDealerTurn

	before := rd.deck.Remaining()
	err := rd.Submit(ActionHit)

	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, before, rd.deck.Remaining(), "no card may be drawn")
	assert.Equal(t, 2, rd.player.Size())
	assert.Equal(t, PhaseDealerTurn, rd.phase)
}

func TestEmptyDeckAbortsRound(t *testing.T) {
	// Exactly the opening four cards; the first hit has nothing to draw.
	rd := startRound(t, DefaultRules(), cards.Two, cards.Five, cards.Three, cards.Six)

	err := rd.Submit(ActionHit)
	require.Error(t, err)
	assert.ErrorIs(t, err, cards.ErrEmptyDeck)

	assert.Equal(t, PhaseDone, rd.Phase())
	_, ok := rd.Outcome()
	assert.False(t, ok, "an aborted round settles nothing")
}

func TestDealingFromShortDeckFails(t *testing.T) {
	_, err := Start(cards.From(card(cards.Two), card(cards.Three)), DefaultRules())
	assert.ErrorIs(t, err, cards.ErrEmptyDeck)
}

func TestSnapshotHidesHoleCardDuringPlayerTurn(t *testing.T) {
	rd := startRound(t, DefaultRules(), cards.Ten, cards.Six, cards.Nine, cards.Ace, cards.Two)

	snap := rd.Snapshot()
	assert.Equal(t, PhasePlayerTurn, snap.Phase)
	assert.True(t, snap.HoleHidden)
	assert.Len(t, snap.Dealer, 1)
	assert.Equal(t, card(cards.Six), snap.Upcard())
	assert.Equal(t, []Action{ActionHit, ActionStand}, snap.Actions)
	assert.Zero(t, snap.DealerTotal)

	require.NoError(t, rd.Submit(ActionStand))

	snap = rd.Snapshot()
	assert.False(t, snap.HoleHidden)
	assert.GreaterOrEqual(t, len(snap.Dealer), 2)
	assert.Empty(t, snap.Actions)
}

func TestNewRoundIsReproducibleFromSeed(t *testing.T) {
	first, err := NewRound(rand.New(rand.NewSource(42)), DefaultRules())
	require.NoError(t, err)
	second, err := NewRound(rand.New(rand.NewSource(42)), DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, first.player.Cards(), second.player.Cards())
	assert.Equal(t, first.dealer.Cards(), second.dealer.Cards())
	assert.NotEqual(t, first.ID, second.ID)
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input  string
		action Action
		ok     bool
	}{
		{"hit", ActionHit, true},
		{"h", ActionHit, true},
		{"HIT", ActionHit, true},
		{" Stand ", ActionStand, true},
		{"s", ActionStand, true},
		{"double", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		action, err := ParseAction(tt.input)
		if tt.ok {
			require.NoError(t, err, tt.input)
			assert.Equal(t, tt.action, action, tt.input)
		} else {
			assert.ErrorIs(t, err, ErrUnknownAction, tt.input)
		}
	}
}
